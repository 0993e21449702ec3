package memory

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// Address is a symbolic heap location. Addresses are unique across the whole
// run, never reused, and correlate mock objects with the memory model's
// object cache.
type Address uint64

// NilAddress is the zero location; no allocated value ever carries it.
const NilAddress Address = 0

// ErrAddressSpaceExhausted is returned when the allocator runs out of
// addresses. It is fatal for the exploration branch that hit it.
var ErrAddressSpaceExhausted = errors.New("symbolic address space exhausted")

// AddressAllocator hands out fresh symbolic addresses. It is the process-wide
// source of addresses and safe for concurrent use by all exploration branches.
type AddressAllocator struct {
	next  atomic.Uint64
	limit uint64
}

// NewAddressAllocator creates an allocator capped at limit addresses. A zero
// limit means the full address space.
func NewAddressAllocator(limit uint64) *AddressAllocator {
	if limit == 0 {
		limit = math.MaxUint64
	}
	return &AddressAllocator{limit: limit}
}

// Next returns a fresh, never-before-issued address.
func (a *AddressAllocator) Next() (Address, error) {
	n := a.next.Add(1)
	if n > a.limit {
		return NilAddress, fmt.Errorf("allocating address %d of %d: %w", n, a.limit, ErrAddressSpaceExhausted)
	}
	return Address(n), nil
}
