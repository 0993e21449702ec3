package schemas

// -- Class Universe Interfaces --

// ClassRegistry exposes the analyzed program's type universe: which classes
// are actually resolvable on the classpath and what their members declare.
// The class-file ingestion layer populates an implementation before the
// mocking core runs; the core only reads from it.
//
//go:generate mockery --name ClassRegistry --output ../../internal/mocking/mocks --outpkg mocks
type ClassRegistry interface {
	// Class resolves a fully qualified name. The second result is false for
	// phantom types that are referenced but not loadable.
	Class(name string) (ClassId, bool)
	// FieldType resolves the declared type of a field. The second result is
	// false when the field is not a member of its stated declaring class.
	FieldType(id FieldId) (TypeRef, bool)
}

// HierarchyService answers subtype queries over the analyzed program's class
// hierarchy. Inheritors returns the transitive set of known subtypes by
// qualified name; callers resolve the names against the ClassRegistry.
//
//go:generate mockery --name HierarchyService --output ../../internal/mocking/mocks --outpkg mocks
type HierarchyService interface {
	Inheritors(className string) []string
}

// -- Mocking Policy Interfaces --

// MockStrategy is the pluggable eligibility policy. Variants are external
// configuration; the engine treats the predicate as opaque.
type MockStrategy interface {
	// Name identifies the variant for configuration and diagnostics.
	Name() string
	// MocksDesired reports whether this variant sanctions mocking at all.
	// The "no mocks" variant returns false; its affirmative decisions (via
	// the always-mock catalog) are then classified as unexpected unless
	// capabilities force them.
	MocksDesired() bool
	// Eligible decides whether a candidate type may be mocked while
	// analyzing the given class under test.
	Eligible(candidate ClassId, classUnderTest ClassId) bool
}

// ApplicationCapabilities reflects what the eventual generated-test runtime
// can support, independent of what the strategy desires.
type ApplicationCapabilities struct {
	// InstanceMockingAvailable is true when an instance mocking framework
	// is on the generated test's classpath.
	InstanceMockingAvailable bool
	// StaticMockingConfigured is true when static/constructor mocking is
	// configured for the generated test runtime.
	StaticMockingConfigured bool
}
