package rhi

import (
	"time"

	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/queue"
)

// halCommandList adapts a closed hal.CommandBuffer to queue.CommandList so
// it can travel through queue.Queue.Execute.
type halCommandList struct {
	buf  hal.CommandBuffer
	kind queue.Kind
}

func (c *halCommandList) Kind() queue.Kind { return c.kind }

// halFenceWait adapts a single hal.Device/hal.Fence pair to
// gpusync.Backend, so a gpusync.Fence's blocking Wait can fall through to
// the real GPU timeline instead of only ever observing SignalCPU calls.
type halFenceWait struct {
	device hal.Device
	fence  hal.Fence
}

func (w *halFenceWait) Wait(value uint64, timeout time.Duration) (bool, error) {
	return w.device.Wait(w.fence, value, timeout)
}

// halQueueBackend adapts one hal.Queue/hal.Device/hal.Fence triple to
// queue.Backend, the native submission surface queue.Queue drives (spec.md
// §4.4/§4.5). It is the only place in this module that bridges the
// consumed hal boundary to the queue/gpusync sync fabric built on top of it.
//
// hal.Queue has no primitive for enqueuing a GPU-side wait ahead of future
// submits (no semaphore-wait-before-submit call on the interface) — a
// concrete backend that has one (a Vulkan VkQueueSubmit wait-semaphore, a
// D3D12 ID3D12CommandQueue::Wait) would implement queue.Backend directly
// against its own native calls instead of through this bridge. Since this
// module ships no concrete backend, Wait here is a CPU-synchronous stand-in
// built from hal.Device.Wait.
type halQueueBackend struct {
	hal    hal.Queue
	device hal.Device
	fence  hal.Fence
}

func newHALQueueBackend(device hal.Device, q hal.Queue, fence hal.Fence) *halQueueBackend {
	return &halQueueBackend{hal: q, device: device, fence: fence}
}

func (b *halQueueBackend) Execute(lists []queue.CommandList) error {
	bufs := make([]hal.CommandBuffer, 0, len(lists))
	for _, l := range lists {
		if hc, ok := l.(*halCommandList); ok && hc.buf != nil {
			bufs = append(bufs, hc.buf)
		}
	}
	return b.hal.Submit(bufs, nil, 0)
}

func (b *halQueueBackend) Signal(fence *gpusync.Fence, value uint64) error {
	if err := b.hal.Submit(nil, b.fence, value); err != nil {
		return err
	}
	fence.SignalCPU(value)
	return nil
}

func (b *halQueueBackend) Wait(fence *gpusync.Fence, value uint64) error {
	ok, err := b.device.Wait(b.fence, value, gpusync.DefaultTimeout)
	if err != nil {
		return err
	}
	if !ok {
		return gpusync.ErrTimeout
	}
	return nil
}

func (b *halQueueBackend) TimestampFrequency() (uint64, error) {
	period := b.hal.GetTimestampPeriod()
	if period <= 0 {
		return 0, nil
	}
	return uint64(1e9 / float64(period)), nil
}

func (b *halQueueBackend) InsertDebugMarker(name string, color uint32) {}
func (b *halQueueBackend) BeginDebugEvent(name string, color uint32)   {}
func (b *halQueueBackend) EndDebugEvent()                              {}
