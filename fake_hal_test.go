package rhi_test

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/hal"
)

// fakeResource is the common Destroy() no-op embedded by every fake
// resource below; none of them own real GPU memory.
type fakeResource struct{ destroyed bool }

func (r *fakeResource) Destroy() { r.destroyed = true }

type fakeBuffer struct {
	fakeResource
	size uint64
}

func (b *fakeBuffer) NativeHandle() uintptr { return uintptr(1) }

type fakeTexture struct{ fakeResource }

type fakeTextureView struct{ fakeResource }

func (v *fakeTextureView) NativeHandle() uintptr { return uintptr(2) }

type fakeSampler struct{ fakeResource }

func (s *fakeSampler) NativeHandle() uintptr { return uintptr(3) }

type fakeShaderModule struct{ fakeResource }
type fakeBindGroupLayout struct{ fakeResource }
type fakeBindGroup struct{ fakeResource }
type fakePipelineLayout struct{ fakeResource }
type fakeRenderPipeline struct{ fakeResource }
type fakeComputePipeline struct{ fakeResource }
type fakeCommandBuffer struct{ fakeResource }
type fakeFence struct {
	fakeResource
	value uint64
}

// fakeRenderPassEncoder and fakeComputePassEncoder record nothing; they
// only need to satisfy the hal interfaces so recording calls don't panic.
type fakeRenderPassEncoder struct{}

func (*fakeRenderPassEncoder) End()                                                       {}
func (*fakeRenderPassEncoder) SetPipeline(hal.RenderPipeline)                             {}
func (*fakeRenderPassEncoder) SetBindGroup(uint32, hal.BindGroup, []uint32)               {}
func (*fakeRenderPassEncoder) SetVertexBuffer(uint32, hal.Buffer, uint64)                 {}
func (*fakeRenderPassEncoder) SetIndexBuffer(hal.Buffer, gputypes.IndexFormat, uint64)    {}
func (*fakeRenderPassEncoder) SetViewport(x, y, w, h, minD, maxD float32)                 {}
func (*fakeRenderPassEncoder) SetScissorRect(x, y, w, h uint32)                           {}
func (*fakeRenderPassEncoder) SetBlendConstant(*gputypes.Color)                           {}
func (*fakeRenderPassEncoder) SetStencilReference(uint32)                                 {}
func (*fakeRenderPassEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
}
func (*fakeRenderPassEncoder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
}
func (*fakeRenderPassEncoder) DrawIndirect(hal.Buffer, uint64)        {}
func (*fakeRenderPassEncoder) DrawIndexedIndirect(hal.Buffer, uint64) {}
func (*fakeRenderPassEncoder) ExecuteBundle(hal.RenderBundle)         {}

type fakeComputePassEncoder struct{}

func (*fakeComputePassEncoder) End()                                         {}
func (*fakeComputePassEncoder) SetPipeline(hal.ComputePipeline)              {}
func (*fakeComputePassEncoder) SetBindGroup(uint32, hal.BindGroup, []uint32) {}
func (*fakeComputePassEncoder) Dispatch(x, y, z uint32)                      {}
func (*fakeComputePassEncoder) DispatchIndirect(hal.Buffer, uint64)          {}

// fakeCommandEncoder records nothing but tracks begin/end-encoding state so
// tests can assert Finish()/Close() semantics.
type fakeCommandEncoder struct {
	began  bool
	ended  bool
}

func (e *fakeCommandEncoder) BeginEncoding(label string) error { e.began = true; return nil }

func (e *fakeCommandEncoder) EndEncoding() (hal.CommandBuffer, error) {
	e.ended = true
	return &fakeCommandBuffer{}, nil
}

func (e *fakeCommandEncoder) DiscardEncoding()                                 {}
func (e *fakeCommandEncoder) ResetAll(commandBuffers []hal.CommandBuffer)      {}
func (e *fakeCommandEncoder) TransitionBuffers(barriers []hal.BufferBarrier)   {}
func (e *fakeCommandEncoder) TransitionTextures(barriers []hal.TextureBarrier) {}
func (e *fakeCommandEncoder) ClearBuffer(buffer hal.Buffer, offset, size uint64) {
}
func (e *fakeCommandEncoder) CopyBufferToBuffer(src, dst hal.Buffer, regions []hal.BufferCopy) {
}
func (e *fakeCommandEncoder) CopyBufferToTexture(src hal.Buffer, dst hal.Texture, regions []hal.BufferTextureCopy) {
}
func (e *fakeCommandEncoder) CopyTextureToBuffer(src hal.Texture, dst hal.Buffer, regions []hal.BufferTextureCopy) {
}
func (e *fakeCommandEncoder) CopyTextureToTexture(src, dst hal.Texture, regions []hal.TextureCopy) {
}
func (e *fakeCommandEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	return &fakeRenderPassEncoder{}
}
func (e *fakeCommandEncoder) BeginComputePass(desc *hal.ComputePassDescriptor) hal.ComputePassEncoder {
	return &fakeComputePassEncoder{}
}

// fakeQueue records submitted buffer writes so WriteBuffer tests can assert
// on them without a real GPU.
type fakeQueue struct {
	written map[uint64][]byte
}

func (q *fakeQueue) Submit(commandBuffers []hal.CommandBuffer, fence hal.Fence, fenceValue uint64) error {
	if f, ok := fence.(*fakeFence); ok {
		f.value = fenceValue
	}
	return nil
}

func (q *fakeQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) {
	if q.written == nil {
		q.written = make(map[uint64][]byte)
	}
	q.written[offset] = append([]byte(nil), data...)
}

func (q *fakeQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) {
}

func (q *fakeQueue) Present(surface hal.Surface, texture hal.SurfaceTexture) error { return nil }

func (q *fakeQueue) GetTimestampPeriod() float32 { return 1.0 }

// fakeDevice implements hal.Device entirely in memory.
type fakeDevice struct {
	fakeResource
}

func (d *fakeDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	return &fakeBuffer{size: desc.Size}, nil
}
func (d *fakeDevice) DestroyBuffer(buffer hal.Buffer) { buffer.Destroy() }

func (d *fakeDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	return &fakeTexture{}, nil
}
func (d *fakeDevice) DestroyTexture(texture hal.Texture) { texture.Destroy() }

func (d *fakeDevice) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	return &fakeTextureView{}, nil
}
func (d *fakeDevice) DestroyTextureView(view hal.TextureView) { view.Destroy() }

func (d *fakeDevice) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	return &fakeSampler{}, nil
}
func (d *fakeDevice) DestroySampler(sampler hal.Sampler) { sampler.Destroy() }

func (d *fakeDevice) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	return &fakeBindGroupLayout{}, nil
}
func (d *fakeDevice) DestroyBindGroupLayout(layout hal.BindGroupLayout) { layout.Destroy() }

func (d *fakeDevice) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	return &fakeBindGroup{}, nil
}
func (d *fakeDevice) DestroyBindGroup(group hal.BindGroup) { group.Destroy() }

func (d *fakeDevice) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return &fakePipelineLayout{}, nil
}
func (d *fakeDevice) DestroyPipelineLayout(layout hal.PipelineLayout) { layout.Destroy() }

func (d *fakeDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	return &fakeShaderModule{}, nil
}
func (d *fakeDevice) DestroyShaderModule(module hal.ShaderModule) { module.Destroy() }

func (d *fakeDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return &fakeRenderPipeline{}, nil
}
func (d *fakeDevice) DestroyRenderPipeline(pipeline hal.RenderPipeline) { pipeline.Destroy() }

func (d *fakeDevice) CreateComputePipeline(desc *hal.ComputePipelineDescriptor) (hal.ComputePipeline, error) {
	return &fakeComputePipeline{}, nil
}
func (d *fakeDevice) DestroyComputePipeline(pipeline hal.ComputePipeline) { pipeline.Destroy() }

func (d *fakeDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return &fakeCommandEncoder{}, nil
}

func (d *fakeDevice) CreateFence() (hal.Fence, error) { return &fakeFence{}, nil }
func (d *fakeDevice) DestroyFence(fence hal.Fence)     { fence.Destroy() }

func (d *fakeDevice) Wait(fence hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	return true, nil
}

// fakeAdapter implements hal.Adapter, opening exactly one fakeDevice/fakeQueue pair.
type fakeAdapter struct{}

func (a *fakeAdapter) Open(features gputypes.Features, limits gputypes.Limits) (hal.OpenDevice, error) {
	return hal.OpenDevice{Device: &fakeDevice{}, Queue: &fakeQueue{}}, nil
}

func (a *fakeAdapter) TextureFormatCapabilities(format gputypes.TextureFormat) hal.TextureFormatCapabilities {
	return hal.TextureFormatCapabilities{}
}

func (a *fakeAdapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities { return nil }

func (a *fakeAdapter) Destroy() {}

// fakeInstance exposes exactly one fakeAdapter.
type fakeInstance struct{}

func (i *fakeInstance) CreateSurface(displayHandle, windowHandle uintptr) (hal.Surface, error) {
	return nil, gputypes.ErrUnsupported
}

func (i *fakeInstance) EnumerateAdapters(surfaceHint hal.Surface) []hal.ExposedAdapter {
	return []hal.ExposedAdapter{{
		Adapter:  &fakeAdapter{},
		Info:     gputypes.AdapterInfo{Name: "fake", Driver: "fake-driver", DeviceType: gputypes.DeviceTypeCPU},
		Features: gputypes.Features(0),
	}}
}

func (i *fakeInstance) Destroy() {}

// fakeBackend is the hal.Backend this test file injects into CreateInstance.
type fakeBackend struct{}

func (fakeBackend) Variant() gputypes.Backend { return gputypes.BackendUndefined }

func (fakeBackend) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	return &fakeInstance{}, nil
}
