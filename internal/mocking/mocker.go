package mocking

import (
	"errors"
	"fmt"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/memory"
	"go.uber.org/zap"
)

// ErrFieldContract signals that a FieldMock's field identifier does not
// resolve against its stated declaring class. That is upstream corruption of
// identifiers, not a legitimate "don't mock" outcome, so the enclosing
// exploration branch must abort.
var ErrFieldContract = errors.New("field mock does not resolve against its declaring class")

// Mocker is the mock eligibility engine. It is constructed once per analyzed
// method-under-test configuration, builds its always-mock catalog eagerly,
// and is immutable afterwards, so one instance is safely shared read-only
// across all exploration branches.
type Mocker struct {
	log      *zap.Logger
	strategy schemas.MockStrategy
	cut      schemas.ClassId
	registry schemas.ClassRegistry
	caps     schemas.ApplicationCapabilities
	catalog  AlwaysMockCatalog
	listener MockListener
	synth    *Synthesizer
}

// NewMocker constructs the engine for one class under test. The listener may
// be nil. The catalog is built here, once, from the default seeds plus
// extraAlwaysMock.
func NewMocker(
	logger *zap.Logger,
	strategy schemas.MockStrategy,
	classUnderTest schemas.ClassId,
	registry schemas.ClassRegistry,
	hierarchy schemas.HierarchyService,
	extraAlwaysMock []string,
	listener MockListener,
	caps schemas.ApplicationCapabilities,
	synth *Synthesizer,
) *Mocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mocker{
		log:      logger.Named("Mocker"),
		strategy: strategy,
		cut:      classUnderTest,
		registry: registry,
		caps:     caps,
		catalog:  BuildAlwaysMockCatalog(logger, registry, hierarchy, extraAlwaysMock),
		listener: listener,
		synth:    synth,
	}
}

// Catalog exposes the engine's always-mock catalog for reporting layers.
func (m *Mocker) Catalog() AlwaysMockCatalog { return m.catalog }

// Decide applies the eligibility policy to a candidate type and target. A
// negative outcome is returned as NotMocked; an affirmative one synthesizes
// a value and classifies it as expected or unexpected. The only error
// conditions are caller contract violations and memory exhaustion, both
// fatal for the current branch.
func (m *Mocker) Decide(t schemas.ClassId, target MockTarget) (Decision, error) {
	should, err := m.shouldMock(t, target)
	if err != nil {
		return Decision{}, err
	}
	if !should {
		return NotMocked(), nil
	}
	return m.mock(t, target, !schemas.IsUtMockClass(t))
}

// ForceDecide synthesizes a value for the target unconditionally, skipping
// the eligibility rules. Used when the caller has already committed to
// mocking for structural reasons. The listener is always notified.
func (m *Mocker) ForceDecide(t schemas.ClassId, target MockTarget) (Decision, error) {
	return m.mock(t, target, true)
}

// shouldMock evaluates the ordered rule list; the first matching rule wins.
func (m *Mocker) shouldMock(t schemas.ClassId, target MockTarget) (bool, error) {
	// Rules 1-3: engine intrinsics that steer the exploration are never
	// proxied.
	if sm, ok := target.(StaticMethodMock); ok {
		switch sm.Method {
		case schemas.AssumeMethod,
			schemas.AssumeOrExecuteConcretelyMethod,
			schemas.DisableClassCastExceptionCheckMethod:
			return false, nil
		}
	}

	// Rule 4: classes with hand-written symbolic semantics.
	if schemas.IsOverridden(t) {
		return false, nil
	}

	// Rule 5: no mocking runtime can proxy a reflection-inaccessible class.
	if t.InaccessibleViaReflection {
		return false, nil
	}

	// Rule 6: makeSymbolic yields a free symbolic value; still a mock.
	if sm, ok := target.(StaticMethodMock); ok && sm.Method == schemas.MakeSymbolicMethod {
		return true, nil
	}

	// Rule 7: compiler-synthesized artifacts.
	if t.IsSynthetic {
		return false, nil
	}

	// Rule 8: nested and non-public classes cannot be subclassed by proxy
	// frameworks. The engine's own marker class is exempt.
	if !schemas.IsUtMockClass(t) {
		if t.IsNested() {
			return false, nil
		}
		if !t.IsPublic() {
			return false, nil
		}
	}

	// Rule 9: the always-mock catalog overrides the strategy.
	if m.catalog.Contains(t.Name) {
		return true, nil
	}

	// Rule 10: field mocks are judged by their declared field type.
	if fm, ok := target.(FieldMock); ok {
		declaring, ok := m.registry.Class(fm.Field.ClassName)
		if !ok {
			return false, fmt.Errorf("declaring class %s of %s not resolvable: %w",
				fm.Field.ClassName, fm.Field.String(), ErrFieldContract)
		}
		// The reflection-based loader used for symbolic instances cannot
		// load synthetic or override classes.
		if declaring.IsSynthetic || schemas.IsOverridden(declaring) {
			return false, nil
		}
		fieldType, ok := m.registry.FieldType(fm.Field)
		if !ok {
			return false, fmt.Errorf("field %s: %w", fm.Field.String(), ErrFieldContract)
		}
		if !fieldType.IsReference() {
			return false, nil
		}
		candidate, ok := m.registry.Class(fieldType.Name)
		if !ok {
			candidate = schemas.ClassNamed(fieldType.Name)
		}
		return m.strategy.Eligible(candidate, m.cut), nil
	}

	// Rule 11: the strategy has the final word.
	return m.strategy.Eligible(t, m.cut), nil
}

// mock synthesizes the value for an affirmative decision and classifies it.
func (m *Mocker) mock(t schemas.ClassId, target MockTarget, notify bool) (Decision, error) {
	if notify && m.listener != nil {
		m.listener.OnMock(m.strategy.Name(), target)
	}

	var value memory.SymbolicValue
	if sm, ok := target.(StaticMethodMock); ok && sm.Method == schemas.MakeSymbolicMethod {
		// Free symbolic value rather than a proxy-backed mock object.
		v, err := m.synth.FreshValue(schemas.Reference(t.Name))
		if err != nil {
			return Decision{}, err
		}
		value = v
	} else {
		obj, err := m.synth.Construct(target)
		if err != nil {
			return Decision{}, err
		}
		value = obj.Value
	}

	kind := m.classify(t, target)
	m.log.Debug("Mock decision",
		zap.String("type", t.Name),
		zap.String("target", target.Key()),
		zap.String("classification", kind.String()),
	)
	return Decision{Kind: kind, Value: &value}, nil
}

// classify determines whether the synthesized mock is sanctioned by the
// current configuration. The value is never withheld either way.
func (m *Mocker) classify(t schemas.ClassId, target MockTarget) DecisionKind {
	var capable bool
	switch target.(type) {
	case FieldMock, ObjectMock:
		capable = m.caps.InstanceMockingAvailable
	case NewInstanceMock, StaticMethodMock, StaticHostMock:
		capable = m.caps.StaticMockingConfigured
	}

	forcedAndPossible := m.catalog.Contains(t.Name) && capable
	if m.strategy.MocksDesired() || forcedAndPossible {
		return KindExpected
	}
	return KindUnexpected
}
