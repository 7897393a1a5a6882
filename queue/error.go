package queue

import (
	"errors"
	"fmt"
)

// ErrAllocatorInUse is returned by CommandAllocator.Reset when the
// allocator's tagged fence has not yet completed.
var ErrAllocatorInUse = errors.New("queue: command allocator still in use by the GPU")

// ErrPoolExhausted is returned by AllocatorPool.Acquire when the pool has
// reached its configured maximum and no allocator can be reclaimed.
var ErrPoolExhausted = errors.New("queue: allocator pool exhausted")

// SubresourceRangeError is returned when a command references a
// subresource index outside a resource's declared range.
type SubresourceRangeError struct {
	Resource string
	Index    uint32
	Count    uint32
}

func (e *SubresourceRangeError) Error() string {
	return fmt.Sprintf("queue: %s: subresource %d out of range [0,%d)", e.Resource, e.Index, e.Count)
}
