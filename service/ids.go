// Package service holds the shared simulation services injected into systems
package service

import "sync/atomic"

// IDAllocator issues strictly increasing ordinals, safe for concurrent callers
// Zero value is ready to use; the first ordinal is 0
type IDAllocator struct {
	counter atomic.Uint64
}

// NewIDAllocator creates an allocator starting at 0
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the current value and advances the counter
func (a *IDAllocator) Next() uint64 {
	return a.counter.Add(1) - 1
}

// Peek returns the value the next call will return
func (a *IDAllocator) Peek() uint64 {
	return a.counter.Load()
}
