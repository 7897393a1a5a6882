package queue

import (
	"testing"
	"time"

	"github.com/gogpu/rhi/gpusync"
)

type fakeBackend struct {
	executed [][]CommandList
	markers  []string
}

func (b *fakeBackend) Execute(lists []CommandList) error {
	b.executed = append(b.executed, lists)
	return nil
}

func (b *fakeBackend) Signal(fence *gpusync.Fence, value uint64) error {
	fence.SignalCPU(value)
	return nil
}

func (b *fakeBackend) Wait(fence *gpusync.Fence, value uint64) error {
	return nil
}

func (b *fakeBackend) TimestampFrequency() (uint64, error) { return 1_000_000_000, nil }

func (b *fakeBackend) InsertDebugMarker(name string, color uint32) {
	b.markers = append(b.markers, name)
}
func (b *fakeBackend) BeginDebugEvent(name string, color uint32) {}
func (b *fakeBackend) EndDebugEvent()                            {}

func TestQueueFlushWaitsForBackendSignal(t *testing.T) {
	q := New(Graphics, 0, &fakeBackend{})
	if err := q.Flush(2 * time.Second); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

func TestQueueWaitForQueue(t *testing.T) {
	a := New(Graphics, 0, &fakeBackend{})
	b := New(Copy, 1, &fakeBackend{})

	if err := a.Flush(time.Second); err != nil {
		t.Fatal(err)
	}
	if err := b.WaitForQueue(a, 1); err != nil {
		t.Fatalf("WaitForQueue: %v", err)
	}
}

type fakeAllocatorBackend struct {
	resets int
}

func (b *fakeAllocatorBackend) Reset() error {
	b.resets++
	return nil
}

func TestCommandAllocatorLifecycle(t *testing.T) {
	backend := &fakeAllocatorBackend{}
	a := NewCommandAllocator(Graphics, backend)

	if a.Status() != RecordingHost {
		t.Fatalf("new allocator status = %v, want RecordingHost", a.Status())
	}

	a.Close()
	if a.Status() != Closed {
		t.Fatalf("status after Close = %v, want Closed", a.Status())
	}

	fence := gpusync.NewFence(nil)
	a.Submit(fence, 5)
	if a.Status() != InUseGPU {
		t.Fatalf("status after Submit = %v, want InUseGPU", a.Status())
	}
	if a.IsWaitComplete() {
		t.Fatal("should not be wait-complete before the fence reaches 5")
	}
	if err := a.Reset(); err != ErrAllocatorInUse {
		t.Fatalf("Reset while in use: got %v, want ErrAllocatorInUse", err)
	}

	fence.SignalCPU(5)
	a.Poll()
	if a.Status() != Reusable {
		t.Fatalf("status after fence completes = %v, want Reusable", a.Status())
	}
	if err := a.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a.Status() != RecordingHost {
		t.Fatalf("status after Reset = %v, want RecordingHost", a.Status())
	}
	if backend.resets != 1 {
		t.Fatalf("backend.resets = %d, want 1", backend.resets)
	}
}

func TestAllocatorPoolReclaimsAndBoundsLive(t *testing.T) {
	pool := NewAllocatorPool(Copy, func() (*CommandAllocator, error) {
		return NewCommandAllocator(Copy, &fakeAllocatorBackend{}), nil
	})
	pool.MaxLive = 2

	a1, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	a2, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if pool.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pool.Len())
	}

	if _, err := pool.Acquire(); err != ErrPoolExhausted {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}

	fence := gpusync.NewFence(nil)
	a1.Close()
	a1.Submit(fence, 1)
	fence.SignalCPU(1)

	a3, err := pool.Acquire()
	if err != nil {
		t.Fatalf("expected a1 to be reclaimed: %v", err)
	}
	if a3 != a1 {
		t.Fatal("expected Acquire to reclaim the completed allocator rather than fail")
	}
	_ = a2
}
