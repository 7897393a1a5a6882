package query

import (
	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
)

// Allocation is a span of queries handed out of a query heap by a single
// Allocate call.
type Allocation struct {
	Heap       queue.QueryHeap
	StartIndex uint32
	Count      uint32
}

// IsValid reports whether the allocation succeeded.
func (a Allocation) IsValid() bool { return a.Heap != nil && a.Count > 0 }

// FrameResources is the pre-constructed query heap and result buffer for
// one of an Allocator's buffered frame slots. The Device façade is
// responsible for actually creating these (spec.md's External
// Interfaces boundary: allocators only manage offsets and lifetimes,
// not construction).
type FrameResources struct {
	Heap   queue.QueryHeap
	Result alloc.Buffer
}

type frameSlot struct {
	heap           queue.QueryHeap
	result         alloc.Buffer
	allocatedCount uint32
	resolved       bool
	fenceValue     uint64
}

// Allocator owns D frame-buffered query heaps and result buffers for a
// single query type, handing out per-frame query ranges and tracking
// when each frame's results have been resolved to CPU-readable memory
// (spec.md §4.12, original_source/RHIQuery.h's RHIQueryAllocator).
type Allocator struct {
	queryType       Type
	queriesPerFrame uint32
	frames          []frameSlot
	current         int

	signal  gpusync.QueueSignaler
	tracker *gpusync.FenceValueTracker
}

// NewAllocator creates an Allocator for queryType with queriesPerFrame
// queries available each frame, over the given pre-built frame
// resources (one per buffered frame). Resolved frames are gated by a
// fence value taken from tracker, signaled on signal.
func NewAllocator(queryType Type, queriesPerFrame uint32, frames []FrameResources, signal gpusync.QueueSignaler, tracker *gpusync.FenceValueTracker) *Allocator {
	slots := make([]frameSlot, len(frames))
	for i, f := range frames {
		slots[i] = frameSlot{heap: f.Heap, result: f.Result}
	}
	return &Allocator{
		queryType:       queryType,
		queriesPerFrame: queriesPerFrame,
		frames:          slots,
		signal:          signal,
		tracker:         tracker,
	}
}

// Type returns the query type this allocator was built for.
func (a *Allocator) Type() Type { return a.queryType }

// BeginFrame selects the slot for frameIndex and clears its allocation
// count and resolved flag.
func (a *Allocator) BeginFrame(frameIndex uint32) {
	a.current = int(frameIndex) % len(a.frames)
	slot := &a.frames[a.current]
	slot.allocatedCount = 0
	slot.resolved = false
}

// Allocate reserves count queries from the current frame's heap,
// returning an invalid Allocation if doing so would exceed
// queriesPerFrame.
func (a *Allocator) Allocate(count uint32) Allocation {
	slot := &a.frames[a.current]
	if slot.allocatedCount+count > a.queriesPerFrame {
		return Allocation{}
	}
	start := slot.allocatedCount
	slot.allocatedCount += count
	return Allocation{Heap: slot.heap, StartIndex: start, Count: count}
}

// AvailableCount returns how many queries remain unallocated in the
// current frame.
func (a *Allocator) AvailableCount() uint32 {
	return a.queriesPerFrame - a.frames[a.current].allocatedCount
}

// EndFrame resolves the current frame's allocated queries into its
// result buffer and marks the slot resolved once the resolve's fence
// value completes. A frame with no allocated queries skips the resolve
// call but is still marked resolved (there is nothing to wait on).
func (a *Allocator) EndFrame(ctx queue.BaseContext) error {
	slot := &a.frames[a.current]
	if slot.allocatedCount > 0 {
		ctx.ResolveQueryData(slot.heap, 0, slot.allocatedCount, slot.result, 0)
		v, err := a.tracker.Signal(a.signal)
		if err != nil {
			return err
		}
		slot.fenceValue = v
	} else {
		slot.fenceValue = 0
	}
	slot.resolved = true
	return nil
}

// AreResultsReady reports whether frameIndex's slot has been resolved
// and its fence value (if any) has completed.
func (a *Allocator) AreResultsReady(frameIndex uint32) bool {
	slot := &a.frames[int(frameIndex)%len(a.frames)]
	if !slot.resolved {
		return false
	}
	return slot.fenceValue == 0 || a.tracker.Fence().CompletedValue() >= slot.fenceValue
}

// ResultBuffer returns frameIndex's result buffer.
func (a *Allocator) ResultBuffer(frameIndex uint32) alloc.Buffer {
	return a.frames[int(frameIndex)%len(a.frames)].result
}
