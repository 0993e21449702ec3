package memory

import (
	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
)

// SymbolicValue is an opaque synthesized value flowing through the
// exploration. Reference values carry a heap address; primitive and void
// values do not.
type SymbolicValue struct {
	// ID is a globally unique identity for the value.
	ID string `json:"id"`
	// Label is a stable human-readable name derived from the invocation
	// counter, e.g. "mock#java.util.Random#4".
	Label string          `json:"label"`
	Type  schemas.TypeRef `json:"type"`
	// Addr is NilAddress for non-reference values.
	Addr Address `json:"addr"`
}

// IsReference reports whether the value lives on the symbolic heap.
func (v SymbolicValue) IsReference() bool { return v.Type.IsReference() }
