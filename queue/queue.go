package queue

import (
	"time"

	"github.com/gogpu/rhi/gpusync"
)

// CommandList is an opaque, closed command recording produced by a
// Context's Close, ready to be submitted to a Queue.
type CommandList interface {
	Kind() Kind
}

// Backend is the native submission surface a Queue drives: executing
// recorded command lists, GPU-side signal/wait of a fence, debug regions,
// and timestamp calibration. queue.Queue composes this into the higher-
// level contract spec describes (flush, wait_for_queue, ...).
type Backend interface {
	Execute(lists []CommandList) error

	// Signal enqueues a GPU-side signal of fence to value. On a real
	// backend this returns once the signal is recorded, not once the GPU
	// has reached it; a software/test backend may instead call
	// fence.SignalCPU(value) immediately to simulate completion.
	Signal(fence *gpusync.Fence, value uint64) error

	// Wait enqueues a GPU-side wait for fence to reach value before this
	// queue executes anything submitted after this call.
	Wait(fence *gpusync.Fence, value uint64) error

	TimestampFrequency() (uint64, error)

	InsertDebugMarker(name string, color uint32)
	BeginDebugEvent(name string, color uint32)
	EndDebugEvent()
}

// Queue is one of Graphics, Compute, or Copy (spec §4.4). It owns a
// dedicated flush fence so CPU code can block until every prior
// submission has retired, and satisfies gpusync.SyncQueue so it composes
// directly with gpusync.PipelineSync / gpusync.FrameSync.
type Queue struct {
	kind    Kind
	index   int
	backend Backend

	flush *gpusync.FenceValueTracker
}

// New creates a Queue of the given kind, backed by backend. index is this
// queue's node id in a PipelineSync debug cycle graph (0..7); pass a
// distinct index per queue when using PipelineSync.Debug.
func New(kind Kind, index int, backend Backend) *Queue {
	return &Queue{
		kind:    kind,
		index:   index,
		backend: backend,
		flush:   gpusync.NewFenceValueTracker(gpusync.NewFence(nil)),
	}
}

// Kind returns which queue family this is.
func (q *Queue) Kind() Kind { return q.kind }

// GraphIndex satisfies gpusync.SyncQueue.
func (q *Queue) GraphIndex() int { return q.index }

// Execute submits lists for execution, in order.
func (q *Queue) Execute(lists []CommandList) error {
	return q.backend.Execute(lists)
}

// EnqueueSignal satisfies gpusync.QueueSignaler: it enqueues a GPU-side
// signal of fence to value on this queue.
func (q *Queue) EnqueueSignal(fence *gpusync.Fence, value uint64) error {
	return q.backend.Signal(fence, value)
}

// EnqueueWait satisfies gpusync.SyncQueue: it enqueues a GPU-side wait for
// fence to reach value before this queue continues.
func (q *Queue) EnqueueWait(fence *gpusync.Fence, value uint64) error {
	return q.backend.Wait(fence, value)
}

// Signal is a direct alias of EnqueueSignal, named to match spec's
// `signal(fence, value)`.
func (q *Queue) Signal(fence *gpusync.Fence, value uint64) error {
	return q.backend.Signal(fence, value)
}

// Wait is a direct alias of EnqueueWait, named to match spec's
// `wait(fence, value)`.
func (q *Queue) Wait(fence *gpusync.Fence, value uint64) error {
	return q.backend.Wait(fence, value)
}

// WaitForQueue enqueues a GPU wait on this queue for other's flush fence to
// reach v, establishing happens-before without a CPU round-trip.
func (q *Queue) WaitForQueue(other *Queue, v uint64) error {
	return q.EnqueueWait(other.flush.Fence(), v)
}

// Flush allocates the next value on this queue's dedicated flush fence,
// signals it, and blocks the calling goroutine until the GPU has reached
// it (or timeout elapses, defaulting to gpusync.DefaultTimeout when 0).
func (q *Queue) Flush(timeout time.Duration) error {
	v, err := q.flush.Signal(q)
	if err != nil {
		return err
	}
	if timeout == 0 {
		timeout = gpusync.DefaultTimeout
	}
	ok, err := q.flush.Fence().Wait(v, timeout)
	if err != nil {
		return err
	}
	if !ok {
		return gpusync.ErrTimeout
	}
	return nil
}

// TimestampFrequency returns the number of timestamp ticks per second for
// this queue, used to convert resolved timestamp queries into wall time.
func (q *Queue) TimestampFrequency() (uint64, error) {
	return q.backend.TimestampFrequency()
}

// InsertDebugMarker inserts a single-point debug marker into this queue's
// timeline.
func (q *Queue) InsertDebugMarker(name string, color uint32) {
	q.backend.InsertDebugMarker(name, color)
}

// BeginDebugEvent opens a named, colored debug region; must be matched by
// EndDebugEvent.
func (q *Queue) BeginDebugEvent(name string, color uint32) {
	q.backend.BeginDebugEvent(name, color)
}

// EndDebugEvent closes the most recently opened debug region.
func (q *Queue) EndDebugEvent() {
	q.backend.EndDebugEvent()
}
