package gpusync

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by any wait that exceeded its deadline without the
// awaited value completing.
var ErrTimeout = errors.New("gpusync: wait timed out")

// ErrDeviceLost is returned (and reported via a FrameSync's device-lost
// callback) when a frame-boundary wait times out, per spec: a frame fence
// timeout is interpreted as a lost device rather than a transient stall.
var ErrDeviceLost = errors.New("gpusync: device lost")

// CircularDependencyError is raised by PipelineSync's debug-build cycle
// detector when inserting an edge a→b would close a cycle in the per-frame
// sync graph.
type CircularDependencyError struct {
	From, To int
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("gpusync: circular queue dependency: %d -> %d would close a cycle", e.From, e.To)
}

// OverflowError is raised when a bounded collection (a SyncPointWaiter's 16
// slots, PipelineSync's 8 graph nodes) is asked to hold one more entry than
// it has room for.
type OverflowError struct {
	What  string
	Limit int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("gpusync: %s exceeds limit of %d", e.What, e.Limit)
}
