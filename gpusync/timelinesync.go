package gpusync

// TimelineSync is a single long-lived fence with a next-value counter:
// callers can request sync points at arbitrary increasing values without
// the per-frame ring bookkeeping FrameSync adds.
type TimelineSync struct {
	tracker *FenceValueTracker
}

// NewTimelineSync creates a TimelineSync backed by fence.
func NewTimelineSync(fence *Fence) *TimelineSync {
	return &TimelineSync{tracker: NewFenceValueTracker(fence)}
}

// Fence returns the underlying fence.
func (t *TimelineSync) Fence() *Fence { return t.tracker.Fence() }

// Next allocates the next timeline value and enqueues its signal on queue,
// returning the resulting SyncPoint.
func (t *TimelineSync) Next(queue QueueSignaler) (SyncPoint, error) {
	v, err := t.tracker.Signal(queue)
	if err != nil {
		return SyncPoint{}, err
	}
	return SyncPoint{Fence: t.tracker.Fence(), Value: v}, nil
}

// At returns the SyncPoint for an already-known value on this timeline,
// without allocating or signaling anything — for reconstructing a sync
// point a caller recorded earlier.
func (t *TimelineSync) At(value uint64) SyncPoint {
	return SyncPoint{Fence: t.tracker.Fence(), Value: value}
}
