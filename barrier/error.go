package barrier

import (
	"errors"
	"fmt"
)

// ErrTrackerFull is returned when a Tracker's configured maximum tracked
// resources has already been reached.
var ErrTrackerFull = errors.New("barrier: tracker resource limit reached")

// ConfigurationError reports a fatal, debug-build configuration overflow —
// a SplitBarrierBatch exceeding its concurrent-split limit, or a Batch
// overflowing with no context attached to drain it.
type ConfigurationError struct {
	What  string
	Limit int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("barrier: %s exceeds its configured limit of %d", e.What, e.Limit)
}

// SubresourceRangeError is returned when a subresource index falls
// outside a tracked resource's declared count.
type SubresourceRangeError struct {
	Index, Count uint32
}

func (e *SubresourceRangeError) Error() string {
	return fmt.Sprintf("barrier: subresource %d out of range [0,%d)", e.Index, e.Count)
}

// SplitBarrierMismatchError is raised when end_split is called without a
// matching begin_split for the same resource and transition (property P9).
type SplitBarrierMismatchError struct {
	Detail string
}

func (e *SplitBarrierMismatchError) Error() string {
	return "barrier: unmatched split barrier: " + e.Detail
}
