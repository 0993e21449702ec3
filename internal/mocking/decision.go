package mocking

import "github.com/SBOne-Kenobi/UTBotJava/internal/memory"

// DecisionKind classifies the outcome of an eligibility decision.
type DecisionKind int

const (
	// KindNotMocked means no mock value was produced; the caller evaluates
	// the object by other means.
	KindNotMocked DecisionKind = iota
	// KindExpected means the mock is sanctioned by the active strategy or
	// forced by the catalog with the required capability present.
	KindExpected
	// KindUnexpected means a value was produced out of necessity even
	// though current configuration does not sanction it; downstream
	// consumers must treat derived tests as suspect.
	KindUnexpected
)

func (k DecisionKind) String() string {
	switch k {
	case KindExpected:
		return "expected"
	case KindUnexpected:
		return "unexpected"
	default:
		return "not-mocked"
	}
}

// Decision is the result of Decide or ForceDecide. Value is nil exactly when
// Kind is KindNotMocked.
type Decision struct {
	Kind  DecisionKind
	Value *memory.SymbolicValue
}

// NotMocked is the negative decision.
func NotMocked() Decision { return Decision{Kind: KindNotMocked} }

// Expected wraps a sanctioned mock value.
func Expected(v memory.SymbolicValue) Decision { return Decision{Kind: KindExpected, Value: &v} }

// Unexpected wraps a tolerated-but-unsanctioned mock value.
func Unexpected(v memory.SymbolicValue) Decision { return Decision{Kind: KindUnexpected, Value: &v} }

// Mocked reports whether a value was synthesized.
func (d Decision) Mocked() bool { return d.Kind != KindNotMocked }
