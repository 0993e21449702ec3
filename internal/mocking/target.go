package mocking

import (
	"errors"
	"fmt"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/memory"
)

// ErrRetagUnsupported is returned by WithType on target variants whose type
// is derived rather than stored.
var ErrRetagUnsupported = errors.New("mock target does not support retagging its type")

// MockTarget describes what is being mocked and where it lives in the
// symbolic address space. The variant set is closed: every implementation is
// defined in this file, so switches over variants stay exhaustive.
//
// Targets are immutable; WithType produces a copy with a different declared
// type while preserving the address and variant-specific fields.
type MockTarget interface {
	// Type is the declared type of the mocked entity.
	Type() schemas.ClassId
	// Addr is the symbolic location, correlating with the memory model's
	// object cache so repeated requests for one logical entity resolve to
	// the same mock.
	Addr() memory.Address
	// Key is a stable identity used to correlate invocation-log entries.
	Key() string
	// WithType returns a copy retagged with a different declared type.
	WithType(t schemas.ClassId) (MockTarget, error)

	sealed()
}

// FieldMock targets a field of the class under test or of another mock. A
// nil OwnerAddr marks a static field.
type FieldMock struct {
	ClassType schemas.ClassId
	Address   memory.Address
	Field     schemas.FieldId
	// OwnerAddr is the instance holding the field; nil for static fields.
	OwnerAddr *memory.Address
}

func (m FieldMock) Type() schemas.ClassId { return m.ClassType }
func (m FieldMock) Addr() memory.Address  { return m.Address }
func (m FieldMock) Key() string {
	return fmt.Sprintf("field:%s@%d", m.Field.String(), m.Address)
}
func (m FieldMock) WithType(t schemas.ClassId) (MockTarget, error) {
	m.ClassType = t
	return m, nil
}
func (m FieldMock) sealed() {}

// IsStatic reports whether the field has no owning instance.
func (m FieldMock) IsStatic() bool { return m.OwnerAddr == nil }

// ObjectMock targets a method-under-test parameter, or an object returned by
// another mock that itself must be mocked.
type ObjectMock struct {
	ClassType schemas.ClassId
	Address   memory.Address
}

func (m ObjectMock) Type() schemas.ClassId { return m.ClassType }
func (m ObjectMock) Addr() memory.Address  { return m.Address }
func (m ObjectMock) Key() string {
	return fmt.Sprintf("object:%s@%d", m.ClassType.Name, m.Address)
}
func (m ObjectMock) WithType(t schemas.ClassId) (MockTarget, error) {
	m.ClassType = t
	return m, nil
}
func (m ObjectMock) sealed() {}

// StaticHostMock targets the synthetic owner representing a class's static
// universe.
type StaticHostMock struct {
	ClassType schemas.ClassId
	Address   memory.Address
}

func (m StaticHostMock) Type() schemas.ClassId { return m.ClassType }
func (m StaticHostMock) Addr() memory.Address  { return m.Address }
func (m StaticHostMock) Key() string {
	return fmt.Sprintf("statics:%s@%d", m.ClassType.Name, m.Address)
}
func (m StaticHostMock) WithType(t schemas.ClassId) (MockTarget, error) {
	m.ClassType = t
	return m, nil
}
func (m StaticHostMock) sealed() {}

// NewInstanceMock targets an object created via construction that the engine
// elects to mock instead of executing the constructor.
type NewInstanceMock struct {
	ClassType schemas.ClassId
	Address   memory.Address
	// CallSiteClass is the class whose code ran the construction.
	CallSiteClass string
}

func (m NewInstanceMock) Type() schemas.ClassId { return m.ClassType }
func (m NewInstanceMock) Addr() memory.Address  { return m.Address }
func (m NewInstanceMock) Key() string {
	return fmt.Sprintf("new:%s@%d", m.ClassType.Name, m.Address)
}
func (m NewInstanceMock) WithType(t schemas.ClassId) (MockTarget, error) {
	m.ClassType = t
	return m, nil
}
func (m NewInstanceMock) sealed() {}

// StaticMethodMock targets a static method call. Its type is derived from
// the method's declaring class and cannot be retagged.
type StaticMethodMock struct {
	Address memory.Address
	Method  schemas.MethodId
}

func (m StaticMethodMock) Type() schemas.ClassId {
	return schemas.ClassNamed(m.Method.ClassName)
}
func (m StaticMethodMock) Addr() memory.Address { return m.Address }
func (m StaticMethodMock) Key() string {
	return fmt.Sprintf("static:%s@%d", m.Method.Signature(), m.Address)
}
func (m StaticMethodMock) WithType(schemas.ClassId) (MockTarget, error) {
	return nil, fmt.Errorf("retagging %s: %w", m.Key(), ErrRetagUnsupported)
}
func (m StaticMethodMock) sealed() {}
