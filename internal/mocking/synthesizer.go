package mocking

import (
	"fmt"
	"sync"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/memory"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockObject is the symbolic placeholder standing in for a mocked entity.
// Its current value is reachable only through intercepted call results; the
// wrapper itself exposes nothing beyond its identity.
type MockObject struct {
	Value  memory.SymbolicValue
	Target MockTarget
}

// Synthesizer manufactures symbolic mock objects and intercepts simulated
// calls on them. No external mocking runtime is contacted; everything it
// produces is an in-memory symbolic value.
//
// One synthesizer serves all exploration branches of a run: addresses are
// globally unique, so the object cache can be shared.
type Synthesizer struct {
	log     *zap.Logger
	alloc   *memory.AddressAllocator
	counter memory.InvocationCounter

	mu      sync.RWMutex
	objects map[memory.Address]*MockObject
}

// NewSynthesizer creates a synthesizer drawing addresses from alloc and
// invocation numbers from counter.
func NewSynthesizer(logger *zap.Logger, alloc *memory.AddressAllocator, counter memory.InvocationCounter) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		log:     logger.Named("Synthesizer"),
		alloc:   alloc,
		counter: counter,
		objects: make(map[memory.Address]*MockObject),
	}
}

// Construct builds the mock object for a target, or returns the existing one
// when the target's address was seen before. Repeated requests for the same
// logical entity therefore resolve to the same mock.
func (s *Synthesizer) Construct(target MockTarget) (*MockObject, error) {
	addr := target.Addr()

	s.mu.RLock()
	obj, ok := s.objects[addr]
	s.mu.RUnlock()
	if ok {
		return obj, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if obj, ok := s.objects[addr]; ok {
		return obj, nil
	}

	t := target.Type()
	obj = &MockObject{
		Value: memory.SymbolicValue{
			ID:    uuid.NewString(),
			Label: fmt.Sprintf("mock<%s>@%d", t.Name, addr),
			Type:  schemas.Reference(t.Name),
			Addr:  addr,
		},
		Target: target,
	}
	s.objects[addr] = obj
	s.log.Debug("Mock object constructed", zap.String("target", target.Key()))
	return obj, nil
}

// FreshValue synthesizes a free symbolic value of the given type, allocating
// a heap address for reference kinds. Used for the makeSymbolic intrinsic.
func (s *Synthesizer) FreshValue(t schemas.TypeRef) (memory.SymbolicValue, error) {
	v := memory.SymbolicValue{
		ID:    uuid.NewString(),
		Label: fmt.Sprintf("symbolic<%s>", t.Name),
		Type:  t,
	}
	if t.IsReference() {
		addr, err := s.alloc.Next()
		if err != nil {
			return memory.SymbolicValue{}, err
		}
		v.Addr = addr
	}
	return v, nil
}

// Intercept handles one simulated call on a mock object. Constructor calls
// return a void result with no side effect. Every other call consumes one
// global invocation number, synthesizes a return value, and appends one
// entry to the given update log, returning the grown log.
//
// Reference-typed returns become fresh mock objects themselves, so a mock
// can return further mocks; whether those are sanctioned is decided lazily
// when the executor first uses them.
func (s *Synthesizer) Intercept(
	obj *MockObject,
	method schemas.MethodId,
	args []memory.SymbolicValue,
	log memory.UpdateLog,
) (memory.SymbolicValue, memory.UpdateLog, error) {
	if method.Constructor {
		return memory.SymbolicValue{
			ID:    uuid.NewString(),
			Label: "void",
			Type:  schemas.Void(),
		}, log, nil
	}

	n := s.counter.Next()
	label := fmt.Sprintf("mock#%s#%d", method.Signature(), n)

	var value memory.SymbolicValue
	if method.ReturnType.IsReference() {
		addr, err := s.alloc.Next()
		if err != nil {
			return memory.SymbolicValue{}, log, fmt.Errorf("synthesizing return of %s: %w", method.Signature(), err)
		}
		value = memory.SymbolicValue{
			ID:    uuid.NewString(),
			Label: label,
			Type:  method.ReturnType,
			Addr:  addr,
		}
		// Register the returned value as a mock in its own right so later
		// calls on it re-enter interception at the same address.
		returned := ObjectMock{
			ClassType: schemas.ClassNamed(method.ReturnType.Name),
			Address:   addr,
		}
		s.mu.Lock()
		s.objects[addr] = &MockObject{Value: value, Target: returned}
		s.mu.Unlock()
	} else {
		value = memory.SymbolicValue{
			ID:    uuid.NewString(),
			Label: label,
			Type:  method.ReturnType,
		}
	}

	s.log.Debug("Call intercepted",
		zap.String("target", obj.Target.Key()),
		zap.String("method", method.Signature()),
		zap.Uint64("invocation", n),
		zap.Int("args", len(args)),
	)

	entry := memory.MockInvocation{
		TargetKey: obj.Target.Key(),
		Method:    method,
		Number:    n,
		Value:     value,
	}
	return value, log.Append(entry), nil
}
