package readback

import (
	"time"

	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// BufferReadback is a single CPU-mapped buffer in a readback heap, gated
// by a dedicated fence value assigned at EnqueueCopy time (spec.md §4.11).
type BufferReadback struct {
	buffer  alloc.Buffer
	signal  gpusync.QueueSignaler
	tracker *gpusync.FenceValueTracker

	size       uint64
	fenceValue uint64 // 0 means "never enqueued"
}

// NewBufferReadback creates a BufferReadback backed by buf (which must be
// CPU-mapped), signaling completion on signal through tracker.
func NewBufferReadback(buf alloc.Buffer, signal gpusync.QueueSignaler, tracker *gpusync.FenceValueTracker) *BufferReadback {
	return &BufferReadback{buffer: buf, signal: signal, tracker: tracker}
}

// EnqueueCopy records a GPU->CPU copy of size bytes starting at offset
// within src, then enqueues the fence signal that marks it ready.
func (b *BufferReadback) EnqueueCopy(ctx queue.BaseContext, src resource.Refcounted, offset, size uint64) error {
	ctx.CopyBufferRegion(b.buffer, 0, src, offset, size)
	v, err := b.tracker.Signal(b.signal)
	if err != nil {
		return err
	}
	b.fenceValue = v
	b.size = size
	return nil
}

// IsReady reports whether the enqueued copy's fence has completed.
func (b *BufferReadback) IsReady() bool {
	return b.fenceValue != 0 && b.tracker.Fence().CompletedValue() >= b.fenceValue
}

// Wait blocks until the enqueued copy completes or timeout elapses.
func (b *BufferReadback) Wait(timeout time.Duration) (bool, error) {
	if b.fenceValue == 0 {
		return true, nil
	}
	return b.tracker.Fence().Wait(b.fenceValue, timeout)
}

// DataSize returns the byte size of the most recently enqueued copy.
func (b *BufferReadback) DataSize() uint64 { return b.size }

// GetData copies the readback's data into dst, which must be at least
// DataSize() bytes. Returns ErrNotReady if the fence hasn't completed.
func (b *BufferReadback) GetData(dst []byte) error {
	if b.fenceValue == 0 {
		return ErrNeverEnqueued
	}
	if !b.IsReady() {
		return ErrNotReady
	}
	if uint64(len(dst)) < b.size {
		return ErrBufferTooSmall
	}
	copy(dst, b.buffer.Mapped()[:b.size])
	return nil
}
