package schemas

import "strings"

// The engine ships a small API class whose static methods are interpreted
// symbolically instead of being executed or mocked. Calls on it steer the
// exploration (path assumptions, free symbolic values) and must never be
// proxied.
const (
	// UtMockClass is the engine's intrinsic marker class.
	UtMockClass = "org.utbot.api.mock.UtMock"
	// OverridesPackage contains classes with hand-written symbolic
	// semantics that replace their library counterparts during analysis.
	OverridesPackage = "org.utbot.engine.overrides"
)

// Intrinsic marker methods, exported so configuration and reporting layers
// can recognize them without re-deriving identities.
var (
	AssumeMethod = MethodId{
		ClassName: UtMockClass, Name: "assume", ReturnType: Void(),
	}
	AssumeOrExecuteConcretelyMethod = MethodId{
		ClassName: UtMockClass, Name: "assumeOrExecuteConcretely", ReturnType: Void(),
	}
	DisableClassCastExceptionCheckMethod = MethodId{
		ClassName: UtMockClass, Name: "disableClassCastExceptionCheck", ReturnType: Void(),
	}
	MakeSymbolicMethod = MethodId{
		ClassName: UtMockClass, Name: "makeSymbolic", ReturnType: Reference("java.lang.Object"),
	}
)

// IsUtMockClass reports whether the class is the engine's intrinsic marker
// class.
func IsUtMockClass(c ClassId) bool { return c.Name == UtMockClass }

// IsOverridden reports whether the class belongs to the engine's
// symbolic-override package.
func IsOverridden(c ClassId) bool {
	return c.PackageName == OverridesPackage ||
		strings.HasPrefix(c.PackageName, OverridesPackage+".")
}
