package rhi

import (
	"fmt"
	"time"

	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/queue"
)

// Queue submits recorded command buffers to the GPU and provides the
// CPU-GPU synchronization primitives built on top of gpusync (spec.md
// §4.4/§4.5). One Queue is created per Device by Adapter.RequestDevice.
//
// GPU-to-CPU readback (mapping a buffer or texture back for the CPU to
// read) is not a Queue method here: it is asynchronous by nature, so it
// lives in the readback package (readback.BufferReadback /
// readback.TextureReadback), which schedules the copy against this Queue
// and polls the resulting fence value instead of blocking Submit itself.
type Queue struct {
	queue     *queue.Queue
	backend   *halQueueBackend
	halFence  hal.Fence
	syncFence *gpusync.Fence
	device    *Device
	released  bool
}

// Submit submits the given command buffers for execution, in order.
func (q *Queue) Submit(buffers []*CommandBuffer) error {
	if q.released {
		return ErrReleased
	}
	lists := make([]queue.CommandList, 0, len(buffers))
	for _, b := range buffers {
		if b == nil || b.hal == nil {
			continue
		}
		lists = append(lists, &halCommandList{buf: b.hal, kind: q.queue.Kind()})
	}
	return q.queue.Execute(lists)
}

// WriteBuffer writes data to buffer at offset, via the hal queue's
// immediate-write convenience path.
func (q *Queue) WriteBuffer(buffer *Buffer, offset uint64, data []byte) error {
	if q.released {
		return ErrReleased
	}
	if buffer == nil || buffer.hal == nil {
		return fmt.Errorf("rhi: %w: buffer is nil", ErrInvalidDescriptor)
	}
	q.backend.hal.WriteBuffer(buffer.hal, offset, data)
	return nil
}

// WriteTexture writes data to a texture region, via the hal queue's
// immediate-write convenience path.
func (q *Queue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	if q.released {
		return ErrReleased
	}
	q.backend.hal.WriteTexture(dst, data, layout, size)
	return nil
}

// present hands surfaceTex to the hal queue for presentation; used by
// Surface.Present, not exported directly since presentation is scoped to
// the surface that produced the texture.
func (q *Queue) present(surface hal.Surface, surfaceTex hal.SurfaceTexture) error {
	if q.released {
		return ErrReleased
	}
	return q.backend.hal.Present(surface, surfaceTex)
}

// Flush signals this queue's dedicated flush fence and blocks the caller
// until the GPU has reached it, or timeout elapses (0 means
// gpusync.DefaultTimeout).
func (q *Queue) Flush(timeout time.Duration) error {
	if q.released {
		return ErrReleased
	}
	return q.queue.Flush(timeout)
}

// SyncFence returns the gpusync.Fence backing this queue's flush point,
// for composing with gpusync.PipelineSync/FrameSync/TimelineSync.
func (q *Queue) SyncFence() *gpusync.Fence { return q.syncFence }

func (q *Queue) release() {
	if q.released {
		return
	}
	q.released = true
	if q.device != nil && q.device.hal != nil && q.halFence != nil {
		q.device.hal.DestroyFence(q.halFence)
	}
}
