package upload

import (
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

type fakeBuffer struct {
	resource.Base
	size   uint64
	mapped []byte
}

func (f *fakeBuffer) ReleaseGPU()        {}
func (f *fakeBuffer) Size() uint64       { return f.size }
func (f *fakeBuffer) GPUAddress() uint64 { return 0x2000 }
func (f *fakeBuffer) Mapped() []byte     { return f.mapped }

func newFakeBuffer(size uint64) *fakeBuffer {
	b := &fakeBuffer{size: size, mapped: make([]byte, size)}
	b.Init(resource.KindBuffer, b)
	return b
}

type fakeTexture struct {
	resource.Base
}

func newFakeTexture() *fakeTexture {
	t := &fakeTexture{}
	t.Init(resource.KindTexture, t)
	return t
}
func (f *fakeTexture) ReleaseGPU() {}

// fakeContext is a minimal queue.BaseContext recording copy calls.
type fakeContext struct {
	bufferCopies  []queue.BufferCopy
	textureCopies []struct {
		Dest   queue.ImageCopyTexture
		Layout queue.ImageDataLayout
		Size   queue.Extent3D
	}
}

func (f *fakeContext) Kind() queue.Kind                            { return queue.Copy }
func (f *fakeContext) InsertDebugMarker(name string, color uint32)  {}
func (f *fakeContext) BeginDebugEvent(name string, color uint32)    {}
func (f *fakeContext) EndDebugEvent()                               {}
func (f *fakeContext) EmitBarriers(t []queue.BarrierTransition)     {}
func (f *fakeContext) EmitAliasingBarriers(b []queue.AliasingTransition) {}

func (f *fakeContext) CopyBufferRegion(dst resource.Refcounted, dstOffset uint64, src resource.Refcounted, srcOffset uint64, size uint64) {
	f.bufferCopies = append(f.bufferCopies, queue.BufferCopy{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size})
}

func (f *fakeContext) CopyBufferToTexture(src resource.Refcounted, dst queue.ImageCopyTexture, layout queue.ImageDataLayout, size queue.Extent3D) {
	f.textureCopies = append(f.textureCopies, struct {
		Dest   queue.ImageCopyTexture
		Layout queue.ImageDataLayout
		Size   queue.Extent3D
	}{dst, layout, size})
}

func (f *fakeContext) CopyTextureToBuffer(src queue.ImageCopyTexture, dst resource.Refcounted, layout queue.ImageDataLayout, size queue.Extent3D) {
}
func (f *fakeContext) CopyTextureToTexture(src, dst queue.ImageCopyTexture, size queue.Extent3D) {}
func (f *fakeContext) BindDescriptorHeap(heap queue.DescriptorHeap)                              {}
func (f *fakeContext) BeginQuery(heap queue.QueryHeap, index uint32)                             {}
func (f *fakeContext) EndQuery(heap queue.QueryHeap, index uint32)                               {}
func (f *fakeContext) ResolveQueryData(heap queue.QueryHeap, start, count uint32, dst resource.Refcounted, dstOffset uint64) {
}
func (f *fakeContext) Close() (queue.CommandList, error) { return nil, nil }

// fakeBackend is a queue.Backend that signals fences immediately on the
// calling goroutine, as a software backend would.
type fakeBackend struct{ signaled []uint64 }

func (f *fakeBackend) Execute(lists []queue.CommandList) error { return nil }

func (f *fakeBackend) Signal(fence *gpusync.Fence, value uint64) error {
	f.signaled = append(f.signaled, value)
	fence.SignalCPU(value)
	return nil
}

func (f *fakeBackend) Wait(fence *gpusync.Fence, value uint64) error { return nil }

func (f *fakeBackend) TimestampFrequency() (uint64, error) { return 1_000_000_000, nil }

func (f *fakeBackend) InsertDebugMarker(name string, color uint32) {}
func (f *fakeBackend) BeginDebugEvent(name string, color uint32)   {}
func (f *fakeBackend) EndDebugEvent()                              {}

func newFakeCopyQueue() (*queue.Queue, *fakeBackend) {
	backend := &fakeBackend{}
	return queue.New(queue.Copy, 0, backend), backend
}
