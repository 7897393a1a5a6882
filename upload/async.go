package upload

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
)

// UploadStatus is the lifecycle state of an async upload.
type UploadStatus uint8

const (
	UploadPending UploadStatus = iota
	UploadInProgress
	UploadCompleted
)

// AsyncUploadHandle is an opaque, monotone id identifying a queued async
// upload (spec.md §4.10).
type AsyncUploadHandle struct{ id uint64 }

// IsValid reports whether h was returned by a successful enqueue.
func (h AsyncUploadHandle) IsValid() bool { return h.id != 0 }

type pendingUpload struct {
	handle     AsyncUploadHandle
	fenceValue uint64
}

// AsyncManager uploads via a dedicated copy queue gated by a
// FenceValueTracker. Unlike the distilled original it assigns a real fence
// value at enqueue time rather than hardcoding 0 — that 0 was a bug in the
// original's async path (its comment admits the actual cross-queue
// transfer was never wired up), and reproducing it here would make Wait
// return immediately for every pending upload.
type AsyncManager struct {
	heap      *Heap
	copyQueue *queue.Queue
	tracker   *gpusync.FenceValueTracker

	nextHandle atomic.Uint64

	mu      sync.Mutex
	pending []pendingUpload
}

// NewAsyncManager creates an AsyncManager staging through heap and
// signaling completion on copyQueue's fence.
func NewAsyncManager(heap *Heap, copyQueue *queue.Queue, fence *gpusync.Fence) *AsyncManager {
	return &AsyncManager{
		heap:      heap,
		copyQueue: copyQueue,
		tracker:   gpusync.NewFenceValueTracker(fence),
	}
}

// BeginFrame promotes pending entries whose fence value has completed,
// removing them from the pending list (spec.md: "begin_frame() promotes
// pending entries whose fence value <= completed to Completed").
func (m *AsyncManager) BeginFrame() {
	completed := m.tracker.Fence().CompletedValue()
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.pending[:0]
	for _, p := range m.pending {
		if p.fenceValue > completed {
			kept = append(kept, p)
		}
	}
	m.pending = kept
}

// UploadBufferAsync stages and records req through ctx (the recording
// surface for the copy queue), then enqueues a signal for the upload's
// completion and returns a handle tracking it.
func (m *AsyncManager) UploadBufferAsync(ctx queue.BaseContext, req BufferUploadRequest) (AsyncUploadHandle, error) {
	if err := m.heap.UploadBuffer(ctx, req); err != nil {
		return AsyncUploadHandle{}, err
	}
	return m.trackCompletion()
}

// UploadTextureAsync is the texture analogue of UploadBufferAsync.
func (m *AsyncManager) UploadTextureAsync(ctx queue.BaseContext, req TextureUploadRequest) (AsyncUploadHandle, error) {
	if err := m.heap.UploadTexture(ctx, req); err != nil {
		return AsyncUploadHandle{}, err
	}
	return m.trackCompletion()
}

func (m *AsyncManager) trackCompletion() (AsyncUploadHandle, error) {
	fenceValue, err := m.tracker.Signal(m.copyQueue)
	if err != nil {
		return AsyncUploadHandle{}, err
	}
	handle := AsyncUploadHandle{id: m.nextHandle.Add(1)}
	m.mu.Lock()
	m.pending = append(m.pending, pendingUpload{handle: handle, fenceValue: fenceValue})
	m.mu.Unlock()
	return handle, nil
}

// Status reports an upload's lifecycle state. A handle no longer in the
// pending list (because BeginFrame already retired it) reports Completed.
func (m *AsyncManager) Status(handle AsyncUploadHandle) UploadStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pending {
		if p.handle == handle {
			return UploadInProgress
		}
	}
	return UploadCompleted
}

// Wait blocks until handle's upload completes or timeout elapses. An
// unknown (already-retired) handle reports done immediately.
func (m *AsyncManager) Wait(handle AsyncUploadHandle, timeout time.Duration) (bool, error) {
	m.mu.Lock()
	fenceValue := uint64(0)
	found := false
	for _, p := range m.pending {
		if p.handle == handle {
			fenceValue, found = p.fenceValue, true
			break
		}
	}
	m.mu.Unlock()
	if !found {
		return true, nil
	}
	return m.tracker.Fence().Wait(fenceValue, timeout)
}

// WaitAll waits on the maximum outstanding fence value across every
// pending upload, then clears the pending list.
func (m *AsyncManager) WaitAll(timeout time.Duration) (bool, error) {
	m.mu.Lock()
	var maxValue uint64
	for _, p := range m.pending {
		if p.fenceValue > maxValue {
			maxValue = p.fenceValue
		}
	}
	m.mu.Unlock()
	if maxValue == 0 {
		return true, nil
	}
	done, err := m.tracker.Fence().Wait(maxValue, timeout)
	if err == nil && done {
		m.mu.Lock()
		m.pending = m.pending[:0]
		m.mu.Unlock()
	}
	return done, err
}

// SyncPoint returns a sync point graphics-queue consumers can wait on to
// gate reads on every upload enqueued so far completing.
func (m *AsyncManager) SyncPoint() gpusync.SyncPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxValue uint64
	for _, p := range m.pending {
		if p.fenceValue > maxValue {
			maxValue = p.fenceValue
		}
	}
	return gpusync.SyncPoint{Fence: m.tracker.Fence(), Value: maxValue}
}

// WaitOnGraphicsQueue enqueues a GPU-side wait on graphicsQueue for every
// upload enqueued so far, without blocking the CPU.
func (m *AsyncManager) WaitOnGraphicsQueue(graphicsQueue *queue.Queue) error {
	sp := m.SyncPoint()
	if sp.Value == 0 {
		return nil
	}
	return graphicsQueue.Wait(sp.Fence, sp.Value)
}
