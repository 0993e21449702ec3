package memory

import "sync/atomic"

// InvocationCounter labels intercepted mock calls. Values must be globally
// unique and monotonically non-decreasing across all exploration branches;
// they need not be contiguous per branch. The narrow interface lets tests
// inject a deterministic counter.
type InvocationCounter interface {
	Next() uint64
}

// AtomicCounter is the process-wide InvocationCounter used in production.
type AtomicCounter struct {
	n atomic.Uint64
}

// NewAtomicCounter returns a counter starting at zero; the first Next call
// yields 1.
func NewAtomicCounter() *AtomicCounter { return &AtomicCounter{} }

// Next atomically returns the next invocation number.
func (c *AtomicCounter) Next() uint64 { return c.n.Add(1) }

// Current reports the last issued number without consuming one.
func (c *AtomicCounter) Current() uint64 { return c.n.Load() }
