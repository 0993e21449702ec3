package mocking

import (
	"fmt"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
)

// Strategy variant names accepted by configuration.
const (
	StrategyNoMocks       = "no-mocks"
	StrategyOtherPackages = "other-packages"
	StrategyOtherClasses  = "other-classes"
)

// NoMocksStrategy never sanctions a mock. Types in the always-mock catalog
// still produce values, classified as unexpected unless capabilities force
// them.
type NoMocksStrategy struct{}

var _ schemas.MockStrategy = NoMocksStrategy{}

func (NoMocksStrategy) Name() string       { return StrategyNoMocks }
func (NoMocksStrategy) MocksDesired() bool { return false }
func (NoMocksStrategy) Eligible(schemas.ClassId, schemas.ClassId) bool {
	return false
}

// OtherPackagesStrategy mocks types declared outside the package of the
// class under test.
type OtherPackagesStrategy struct{}

var _ schemas.MockStrategy = OtherPackagesStrategy{}

func (OtherPackagesStrategy) Name() string       { return StrategyOtherPackages }
func (OtherPackagesStrategy) MocksDesired() bool { return true }
func (OtherPackagesStrategy) Eligible(candidate, classUnderTest schemas.ClassId) bool {
	return candidate.PackageName != classUnderTest.PackageName
}

// OtherClassesStrategy mocks every type except the class under test itself.
type OtherClassesStrategy struct{}

var _ schemas.MockStrategy = OtherClassesStrategy{}

func (OtherClassesStrategy) Name() string       { return StrategyOtherClasses }
func (OtherClassesStrategy) MocksDesired() bool { return true }
func (OtherClassesStrategy) Eligible(candidate, classUnderTest schemas.ClassId) bool {
	return candidate.Name != classUnderTest.Name
}

// StrategyFromName resolves a configured variant name.
func StrategyFromName(name string) (schemas.MockStrategy, error) {
	switch name {
	case StrategyNoMocks:
		return NoMocksStrategy{}, nil
	case StrategyOtherPackages:
		return OtherPackagesStrategy{}, nil
	case StrategyOtherClasses:
		return OtherClassesStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown mock strategy %q", name)
	}
}
