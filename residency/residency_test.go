package residency

import "github.com/gogpu/rhi/resource"

type fakeResource struct {
	resource.Base
	size      uint64
	priority  Priority
	lastFrame uint64
	lastFence uint64
}

func (f *fakeResource) ReleaseGPU()                 {}
func (f *fakeResource) Size() uint64                { return f.size }
func (f *fakeResource) ResidencyPriority() Priority { return f.priority }
func (f *fakeResource) SetLastUsed(frame, fenceValue uint64) {
	f.lastFrame, f.lastFence = frame, fenceValue
}

func newFakeResource(size uint64, priority Priority) *fakeResource {
	r := &fakeResource{size: size, priority: priority}
	r.Init(resource.KindTexture, r)
	return r
}

type fakeStreamingResource struct {
	resource.Base
	current, requested StreamingLevel
	complete           bool
}

func (f *fakeStreamingResource) ReleaseGPU()                             {}
func (f *fakeStreamingResource) CurrentStreamingLevel() StreamingLevel   { return f.current }
func (f *fakeStreamingResource) RequestedStreamingLevel() StreamingLevel { return f.requested }
func (f *fakeStreamingResource) RequestStreamingLevel(level StreamingLevel) {
	f.requested = level
}
func (f *fakeStreamingResource) IsStreamingComplete() bool { return f.complete }

func newFakeStreamingResource(current StreamingLevel) *fakeStreamingResource {
	r := &fakeStreamingResource{current: current, requested: current, complete: true}
	r.Init(resource.KindTexture, r)
	return r
}
