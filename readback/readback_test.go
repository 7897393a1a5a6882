package readback

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
func (f *fakeBuffer) GPUAddress() uint64 { return 0x3000 }
func (f *fakeBuffer) Mapped() []byte     { return f.mapped }

func newFakeBuffer(size uint64) *fakeBuffer {
	b := &fakeBuffer{size: size, mapped: make([]byte, size)}
	b.Init(resource.KindBuffer, b)
	return b
}

type fakeTexture struct{ resource.Base }

func (f *fakeTexture) ReleaseGPU() {}

func newFakeTexture() *fakeTexture {
	t := &fakeTexture{}
	t.Init(resource.KindTexture, t)
	return t
}

// fakeContext records CopyBufferRegion/CopyTextureToBuffer calls and
// copies data into the destination buffer's mapped bytes, simulating a
// backend that actually performs the GPU-side copy inline.
type fakeContext struct {
	bufferCopies  int
	textureCopies int
}

func (f *fakeContext) Kind() queue.Kind                                   { return queue.Copy }
func (f *fakeContext) InsertDebugMarker(name string, color uint32)         {}
func (f *fakeContext) BeginDebugEvent(name string, color uint32)           {}
func (f *fakeContext) EndDebugEvent()                                      {}
func (f *fakeContext) EmitBarriers(t []queue.BarrierTransition)            {}
func (f *fakeContext) EmitAliasingBarriers(b []queue.AliasingTransition)   {}

func (f *fakeContext) CopyBufferRegion(dst resource.Refcounted, dstOffset uint64, src resource.Refcounted, srcOffset uint64, size uint64) {
	f.bufferCopies++
	if buf, ok := dst.(*fakeBuffer); ok {
		if srcBuf, ok := src.(*fakeBuffer); ok {
			copy(buf.mapped[dstOffset:dstOffset+size], srcBuf.mapped[srcOffset:srcOffset+size])
		}
	}
}

func (f *fakeContext) CopyBufferToTexture(src resource.Refcounted, dst queue.ImageCopyTexture, layout queue.ImageDataLayout, size queue.Extent3D) {
}

func (f *fakeContext) CopyTextureToBuffer(src queue.ImageCopyTexture, dst resource.Refcounted, layout queue.ImageDataLayout, size queue.Extent3D) {
	f.textureCopies++
	if buf, ok := dst.(*fakeBuffer); ok {
		for i := range buf.mapped {
			buf.mapped[i] = byte(i + 1)
		}
	}
}

func (f *fakeContext) CopyTextureToTexture(src, dst queue.ImageCopyTexture, size queue.Extent3D) {}
func (f *fakeContext) BindDescriptorHeap(heap queue.DescriptorHeap)                              {}
func (f *fakeContext) BeginQuery(heap queue.QueryHeap, index uint32)                             {}
func (f *fakeContext) EndQuery(heap queue.QueryHeap, index uint32)                               {}
func (f *fakeContext) ResolveQueryData(heap queue.QueryHeap, start, count uint32, dst resource.Refcounted, dstOffset uint64) {
}
func (f *fakeContext) Close() (queue.CommandList, error) { return nil, nil }

// fakeBackend is a queue.Backend that signals fences synchronously.
type fakeBackend struct{}

func (f *fakeBackend) Execute(lists []queue.CommandList) error                { return nil }
func (f *fakeBackend) Signal(fence *gpusync.Fence, value uint64) error        { fence.SignalCPU(value); return nil }
func (f *fakeBackend) Wait(fence *gpusync.Fence, value uint64) error          { return nil }
func (f *fakeBackend) TimestampFrequency() (uint64, error)                   { return 1_000_000_000, nil }
func (f *fakeBackend) InsertDebugMarker(name string, color uint32)            {}
func (f *fakeBackend) BeginDebugEvent(name string, color uint32)              {}
func (f *fakeBackend) EndDebugEvent()                                         {}

func newFakeCopyQueue() *queue.Queue {
	return queue.New(queue.Copy, 0, &fakeBackend{})
}
