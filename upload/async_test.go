package upload

import (
	"testing"
	"time"

	"github.com/gogpu/rhi/gpusync"
)

func newTestAsyncManager(t *testing.T) (*AsyncManager, *fakeBackend) {
	t.Helper()
	h := NewHeap(newFakeBuffer(4096), 3)
	h.BeginFrame(0, 0)
	copyQueue, backend := newFakeCopyQueue()
	fence := gpusync.NewFence(nil)
	return NewAsyncManager(h, copyQueue, fence), backend
}

func TestUploadBufferAsyncAssignsRealFenceValue(t *testing.T) {
	m, backend := newTestAsyncManager(t)
	ctx := &fakeContext{}

	handle, err := m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if !handle.IsValid() {
		t.Fatal("expected a valid handle")
	}
	// The fix for the original's fenceValue=0 bug: the signaled value must
	// be a real, nonzero, monotone fence value, not the hardcoded 0 the
	// distilled source used.
	if len(backend.signaled) != 1 || backend.signaled[0] == 0 {
		t.Fatalf("expected a single nonzero signaled fence value, got %v", backend.signaled)
	}
}

func TestUploadAsyncStatusInProgressBeforeBeginFrame(t *testing.T) {
	m, _ := newTestAsyncManager(t)
	ctx := &fakeContext{}
	handle, err := m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{9}})
	if err != nil {
		t.Fatal(err)
	}
	// The fence has already been signaled (fakeBackend does so
	// synchronously), but BeginFrame hasn't run yet to retire the pending
	// entry, so Status must still report InProgress.
	if m.Status(handle) != UploadInProgress {
		t.Fatalf("expected InProgress before BeginFrame retires it, got %v", m.Status(handle))
	}
}

func TestUploadAsyncBeginFramePromotesCompleted(t *testing.T) {
	m, _ := newTestAsyncManager(t)
	ctx := &fakeContext{}
	handle, _ := m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{9}})

	// fakeBackend.Signal already calls fence.SignalCPU synchronously, so
	// the fence has already reached the assigned value by the time
	// BeginFrame runs.
	m.BeginFrame()
	if m.Status(handle) != UploadCompleted {
		t.Fatalf("expected Completed after BeginFrame retires it, got %v", m.Status(handle))
	}
}

func TestUploadAsyncWaitReturnsImmediatelyForUnknownHandle(t *testing.T) {
	m, _ := newTestAsyncManager(t)
	done, err := m.Wait(AsyncUploadHandle{}, time.Millisecond)
	if err != nil || !done {
		t.Fatalf("expected an unknown handle to report done immediately, got done=%v err=%v", done, err)
	}
}

func TestUploadAsyncWaitAllWaitsOnMaxFenceValue(t *testing.T) {
	m, _ := newTestAsyncManager(t)
	ctx := &fakeContext{}
	_, _ = m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{1}})
	_, _ = m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{2}})

	done, err := m.WaitAll(time.Second)
	if err != nil || !done {
		t.Fatalf("expected WaitAll to succeed, got done=%v err=%v", done, err)
	}
}

func TestUploadAsyncSyncPointReflectsLatestPending(t *testing.T) {
	m, _ := newTestAsyncManager(t)
	ctx := &fakeContext{}
	_, _ = m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{1}})
	_, _ = m.UploadBufferAsync(ctx, BufferUploadRequest{Dest: newFakeBuffer(64), Src: []byte{2}})

	sp := m.SyncPoint()
	if sp.Value != 2 {
		t.Fatalf("SyncPoint().Value = %d, want 2 (the second upload's fence value)", sp.Value)
	}
	if !sp.IsComplete() {
		t.Fatal("fakeBackend signals synchronously, so the sync point should already be complete")
	}
}
