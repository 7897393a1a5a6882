package gpusync

import "time"

// SyncPoint identifies a point on a GPU timeline: a fence and the value it
// must reach to be considered passed.
type SyncPoint struct {
	Fence *Fence
	Value uint64
}

// IsComplete is a non-blocking check of whether the sync point has already
// passed.
func (s SyncPoint) IsComplete() bool {
	if s.Fence == nil {
		return true
	}
	return s.Fence.CompletedValue() >= s.Value
}

// Wait blocks until the sync point completes or timeout elapses. A zero
// timeout means "use DefaultTimeout" (30s) — pass Infinite explicitly to
// wait forever.
func (s SyncPoint) Wait(timeout time.Duration) (bool, error) {
	if s.Fence == nil {
		return true, nil
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return s.Fence.Wait(s.Value, timeout)
}
