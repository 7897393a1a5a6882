package query

import (
	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

type fakeHeap struct{ resource.Base }

func (f *fakeHeap) ReleaseGPU() {}

func newFakeHeap() *fakeHeap {
	h := &fakeHeap{}
	h.Init(resource.KindQueryHeap, h)
	return h
}

type fakeBuffer struct {
	resource.Base
	size   uint64
	mapped []byte
}

func (f *fakeBuffer) ReleaseGPU()        {}
func (f *fakeBuffer) Size() uint64       { return f.size }
func (f *fakeBuffer) GPUAddress() uint64 { return 0x4000 }
func (f *fakeBuffer) Mapped() []byte     { return f.mapped }

var _ alloc.Buffer = (*fakeBuffer)(nil)

func newFakeBuffer(size uint64) *fakeBuffer {
	b := &fakeBuffer{size: size, mapped: make([]byte, size)}
	b.Init(resource.KindBuffer, b)
	return b
}

type queryCall struct {
	heap  queue.QueryHeap
	index uint32
}

// fakeContext records BeginQuery/EndQuery/ResolveQueryData calls.
type fakeContext struct {
	begins    []queryCall
	ends      []queryCall
	resolves  int
	lastStart uint32
	lastCount uint32
}

func (f *fakeContext) Kind() queue.Kind                                 { return queue.Graphics }
func (f *fakeContext) InsertDebugMarker(name string, color uint32)      {}
func (f *fakeContext) BeginDebugEvent(name string, color uint32)        {}
func (f *fakeContext) EndDebugEvent()                                   {}
func (f *fakeContext) EmitBarriers(t []queue.BarrierTransition)         {}
func (f *fakeContext) EmitAliasingBarriers(b []queue.AliasingTransition) {}

func (f *fakeContext) CopyBufferRegion(dst resource.Refcounted, dstOffset uint64, src resource.Refcounted, srcOffset uint64, size uint64) {
}
func (f *fakeContext) CopyBufferToTexture(src resource.Refcounted, dst queue.ImageCopyTexture, layout queue.ImageDataLayout, size queue.Extent3D) {
}
func (f *fakeContext) CopyTextureToBuffer(src queue.ImageCopyTexture, dst resource.Refcounted, layout queue.ImageDataLayout, size queue.Extent3D) {
}
func (f *fakeContext) CopyTextureToTexture(src, dst queue.ImageCopyTexture, size queue.Extent3D) {}
func (f *fakeContext) BindDescriptorHeap(heap queue.DescriptorHeap)                              {}

func (f *fakeContext) BeginQuery(heap queue.QueryHeap, index uint32) {
	f.begins = append(f.begins, queryCall{heap, index})
}
func (f *fakeContext) EndQuery(heap queue.QueryHeap, index uint32) {
	f.ends = append(f.ends, queryCall{heap, index})
}
func (f *fakeContext) ResolveQueryData(heap queue.QueryHeap, start, count uint32, dst resource.Refcounted, dstOffset uint64) {
	f.resolves++
	f.lastStart, f.lastCount = start, count
}
func (f *fakeContext) Close() (queue.CommandList, error) { return nil, nil }

// fakeBackend is a queue.Backend that signals fences synchronously.
type fakeBackend struct{}

func (f *fakeBackend) Execute(lists []queue.CommandList) error        { return nil }
func (f *fakeBackend) Signal(fence *gpusync.Fence, value uint64) error { fence.SignalCPU(value); return nil }
func (f *fakeBackend) Wait(fence *gpusync.Fence, value uint64) error   { return nil }
func (f *fakeBackend) TimestampFrequency() (uint64, error)            { return 1_000_000_000, nil }
func (f *fakeBackend) InsertDebugMarker(name string, color uint32)     {}
func (f *fakeBackend) BeginDebugEvent(name string, color uint32)       {}
func (f *fakeBackend) EndDebugEvent()                                  {}

func newFakeQueue() *queue.Queue {
	return queue.New(queue.Graphics, 0, &fakeBackend{})
}

func newTestAllocator(queriesPerFrame uint32, numFrames int) *Allocator {
	q := newFakeQueue()
	tracker := gpusync.NewFenceValueTracker(gpusync.NewFence(nil))
	frames := make([]FrameResources, numFrames)
	for i := range frames {
		frames[i] = FrameResources{Heap: newFakeHeap(), Result: newFakeBuffer(uint64(queriesPerFrame) * 8)}
	}
	return NewAllocator(Occlusion, queriesPerFrame, frames, q, tracker)
}
