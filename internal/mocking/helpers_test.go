package mocking_test

import (
	"testing"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/classes"
	"github.com/SBOne-Kenobi/UTBotJava/internal/hierarchy"
	"github.com/SBOne-Kenobi/UTBotJava/internal/memory"
	"github.com/SBOne-Kenobi/UTBotJava/internal/mocking"
	"go.uber.org/zap"
)

// Fixture classes reused across the engine tests. classUnderTest lives in
// com.example; collaborator lives in a foreign package.
var (
	classUnderTest = schemas.ClassNamed("com.example.Service")
	helperClass    = schemas.ClassNamed("com.example.Helper")
	collaborator   = schemas.ClassNamed("com.other.Collaborator")
	randomClass    = schemas.ClassNamed("java.util.Random")
	seededRandom   = schemas.ClassNamed("com.example.SeededRandom")
	utMockClass    = schemas.ClassNamed(schemas.UtMockClass)

	anonymousClass = schemas.ClassId{
		Name: "com.example.Service$1", PackageName: "com.example", IsAnonymous: true,
	}
	innerClass = schemas.ClassId{
		Name: "com.example.Service$Inner", PackageName: "com.example", IsInner: true,
	}
	localClass = schemas.ClassId{
		Name: "com.example.Service$1Task", PackageName: "com.example", IsLocal: true,
	}
	packagePrivateClass = schemas.ClassId{
		Name: "com.example.Hidden", PackageName: "com.example",
		Visibility: schemas.VisibilityPackagePrivate,
	}
	syntheticClass = schemas.ClassId{
		Name: "com.example.Service$$Lambda$1", PackageName: "com.example", IsSynthetic: true,
	}
	overriddenClass = schemas.ClassNamed("org.utbot.engine.overrides.UtArrayList")
	hiddenClass     = schemas.ClassId{
		Name: "com.example.Sealed", PackageName: "com.example",
		InaccessibleViaReflection: true,
	}
)

// newTestUniverse builds a registry and hierarchy representing a small
// analyzed program.
func newTestUniverse(t *testing.T) (*classes.InMemoryRegistry, *hierarchy.InMemoryHierarchy) {
	t.Helper()

	r := classes.NewInMemoryRegistry(nil)
	for _, c := range []schemas.ClassId{
		classUnderTest, helperClass, collaborator, randomClass, seededRandom,
		utMockClass, anonymousClass, innerClass, localClass,
		packagePrivateClass, syntheticClass, overriddenClass, hiddenClass,
	} {
		r.AddClass(c)
	}

	r.AddField(schemas.FieldId{ClassName: classUnderTest.Name, Name: "collab"},
		schemas.Reference(collaborator.Name))
	r.AddField(schemas.FieldId{ClassName: classUnderTest.Name, Name: "helper"},
		schemas.Reference(helperClass.Name))
	r.AddField(schemas.FieldId{ClassName: classUnderTest.Name, Name: "count"},
		schemas.Primitive("int"))
	r.AddField(schemas.FieldId{ClassName: syntheticClass.Name, Name: "captured"},
		schemas.Reference(collaborator.Name))
	r.AddField(schemas.FieldId{ClassName: overriddenClass.Name, Name: "elementData"},
		schemas.Reference("java.lang.Object"))

	h := hierarchy.NewInMemoryHierarchy(nil)
	h.AddSubtype(randomClass.Name, seededRandom.Name)
	// A phantom subtype: referenced in the hierarchy but never ingested.
	h.AddSubtype(randomClass.Name, "com.example.GhostRandom")

	return r, h
}

// mockerOptions configure newTestMocker per test.
type mockerOptions struct {
	strategy schemas.MockStrategy
	caps     schemas.ApplicationCapabilities
	listener mocking.MockListener
	extra    []string
}

func newTestMocker(t *testing.T, opts mockerOptions) (*mocking.Mocker, *mocking.Synthesizer) {
	t.Helper()

	registry, hier := newTestUniverse(t)
	if opts.strategy == nil {
		opts.strategy = mocking.OtherPackagesStrategy{}
	}

	synth := mocking.NewSynthesizer(
		zap.NewNop(),
		memory.NewAddressAllocator(0),
		memory.NewAtomicCounter(),
	)
	m := mocking.NewMocker(
		zap.NewNop(),
		opts.strategy,
		classUnderTest,
		registry,
		hier,
		opts.extra,
		opts.listener,
		opts.caps,
		synth,
	)
	return m, synth
}

// staticCall builds a StaticMethodMock target for an intrinsic method.
func staticCall(method schemas.MethodId, addr memory.Address) mocking.StaticMethodMock {
	return mocking.StaticMethodMock{Address: addr, Method: method}
}
