package resource

import "sync"

// deferredEntry is one resource awaiting its sync point before ReleaseGPU
// runs.
type deferredEntry struct {
	owner Destroyer
	at    SyncValue
}

// DeferredDeleteQueue retains resources whose refcount reached zero while
// marked for deferred delete, until the GPU timeline has reached the
// recorded fence value (spec.md §4.1). It is owned by a single Device,
// whose Release drains it; otherwise entries are released only when
// Drain is called.
//
// Per spec.md §9 ("Global mutable state... Reimplement as explicit
// collaborators owned by the Device/Engine root object"), this is never a
// package-level singleton: every Device constructs and owns its own.
type DeferredDeleteQueue struct {
	mu      sync.Mutex
	pending []deferredEntry
}

// NewDeferredDeleteQueue creates an empty queue.
func NewDeferredDeleteQueue() *DeferredDeleteQueue {
	return &DeferredDeleteQueue{}
}

// Enqueue retains owner until at.Fence.CompletedValue() >= at.Value.
func (q *DeferredDeleteQueue) Enqueue(owner Destroyer, at SyncValue) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, deferredEntry{owner: owner, at: at})
}

// Drain releases every entry whose sync point has completed, calling
// ReleaseGPU on each in enqueue order. Returns the number of resources
// actually destroyed. Safe to call every frame; a no-op when nothing is
// ready.
func (q *DeferredDeleteQueue) Drain() int {
	q.mu.Lock()
	var ready []deferredEntry
	remaining := q.pending[:0]
	for _, e := range q.pending {
		if e.at.Fence == nil || e.at.Fence.CompletedValue() >= e.at.Value {
			ready = append(ready, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	q.pending = remaining
	q.mu.Unlock()

	for _, e := range ready {
		e.owner.ReleaseGPU()
	}
	return len(ready)
}

// Len returns the number of resources still awaiting their sync point.
func (q *DeferredDeleteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
