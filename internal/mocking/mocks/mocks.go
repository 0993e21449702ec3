package mocks

import (
	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/mocking"
	"github.com/stretchr/testify/mock"
)

// -- Mock Strategy --

// MockStrategy mocks the schemas.MockStrategy interface.
type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) Name() string {
	return m.Called().String(0)
}

func (m *MockStrategy) MocksDesired() bool {
	return m.Called().Bool(0)
}

func (m *MockStrategy) Eligible(candidate, classUnderTest schemas.ClassId) bool {
	return m.Called(candidate, classUnderTest).Bool(0)
}

// -- Hierarchy Service --

// MockHierarchyService mocks the schemas.HierarchyService interface.
type MockHierarchyService struct {
	mock.Mock
}

func (m *MockHierarchyService) Inheritors(className string) []string {
	args := m.Called(className)
	var r0 []string
	if args.Get(0) != nil {
		r0 = args.Get(0).([]string)
	}
	return r0
}

// -- Class Registry --

// MockClassRegistry mocks the schemas.ClassRegistry interface.
type MockClassRegistry struct {
	mock.Mock
}

func (m *MockClassRegistry) Class(name string) (schemas.ClassId, bool) {
	args := m.Called(name)
	var r0 schemas.ClassId
	if args.Get(0) != nil {
		r0 = args.Get(0).(schemas.ClassId)
	}
	return r0, args.Bool(1)
}

func (m *MockClassRegistry) FieldType(id schemas.FieldId) (schemas.TypeRef, bool) {
	args := m.Called(id)
	var r0 schemas.TypeRef
	if args.Get(0) != nil {
		r0 = args.Get(0).(schemas.TypeRef)
	}
	return r0, args.Bool(1)
}

// -- Mock Listener --

// MockListener mocks the mocking.MockListener interface.
type MockListener struct {
	mock.Mock
}

func (m *MockListener) OnMock(strategy string, target mocking.MockTarget) {
	m.Called(strategy, target)
}
