package memory

import (
	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
)

// MockInvocation is one intercepted call on a mock object: which target it
// was made on, which method, its global invocation number, and the value the
// synthesizer returned.
type MockInvocation struct {
	// TargetKey correlates the entry with the MockTarget it was made on.
	TargetKey string           `json:"target_key"`
	Method    schemas.MethodId `json:"method"`
	Number    uint64           `json:"number"`
	Value     SymbolicValue    `json:"value"`
}

// UpdateLog is the persistent, append-only record of mock interactions along
// one exploration path. It is an immutable cons list: Append returns a new
// log sharing the old one's structure, so forking a branch is a value copy
// and appends on one branch never disturb another branch's view.
//
// The zero value is the empty log.
type UpdateLog struct {
	head *logNode
	size int
}

type logNode struct {
	inv  MockInvocation
	next *logNode
}

// Append returns a new log with inv recorded after all existing entries.
func (l UpdateLog) Append(inv MockInvocation) UpdateLog {
	return UpdateLog{head: &logNode{inv: inv, next: l.head}, size: l.size + 1}
}

// Len reports the number of recorded invocations.
func (l UpdateLog) Len() int { return l.size }

// All returns every invocation in append order.
func (l UpdateLog) All() []MockInvocation {
	out := make([]MockInvocation, l.size)
	i := l.size
	for n := l.head; n != nil; n = n.next {
		i--
		out[i] = n.inv
	}
	return out
}

// Invocations returns the ordered sequence recorded for one target and
// method, oldest first. The sequence is what downstream stub generation
// replays.
func (l UpdateLog) Invocations(targetKey string, method schemas.MethodId) []MockInvocation {
	var out []MockInvocation
	for n := l.head; n != nil; n = n.next {
		if n.inv.TargetKey == targetKey && n.inv.Method == method {
			out = append(out, n.inv)
		}
	}
	// Collected newest first; reverse into call order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
