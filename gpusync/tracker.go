package gpusync

import (
	"sync/atomic"
	"time"
)

// QueueSignaler is the minimal queue capability FenceValueTracker needs: the
// ability to enqueue a GPU-side signal of a fence to a value. queue.Queue
// satisfies this without gpusync importing the queue package.
type QueueSignaler interface {
	EnqueueSignal(fence *Fence, value uint64) error
}

// FenceValueTracker pairs a Fence with a monotone next-value counter, so
// "allocate the next timeline value and enqueue its signal" is a single
// atomic operation from the caller's point of view.
type FenceValueTracker struct {
	fence *Fence
	next  atomic.Uint64
}

// NewFenceValueTracker wraps fence, starting the next allocatable value at 1
// (0 is reserved as "never signaled", matching Fence's zero value).
func NewFenceValueTracker(fence *Fence) *FenceValueTracker {
	t := &FenceValueTracker{fence: fence}
	t.next.Store(1)
	return t
}

// Fence returns the wrapped fence.
func (t *FenceValueTracker) Fence() *Fence { return t.fence }

// Signal atomically allocates the next timeline value and enqueues a signal
// of it on queue, returning the allocated value.
func (t *FenceValueTracker) Signal(queue QueueSignaler) (uint64, error) {
	v := t.next.Add(1) - 1
	if err := queue.EnqueueSignal(t.fence, v); err != nil {
		return v, err
	}
	return v, nil
}

// WaitCPU forwards to the underlying fence's Wait.
func (t *FenceValueTracker) WaitCPU(v uint64, timeout time.Duration) (bool, error) {
	return t.fence.Wait(v, timeout)
}
