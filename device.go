package rhi

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// Device represents a logical GPU device. It is the factory for every GPU
// resource type and owns the deferred-delete queue resources are handed to
// when released while still in flight (spec.md §4.1-§4.2).
//
// Thread-safe for concurrent use, except Release.
type Device struct {
	hal      hal.Device
	queue    *Queue
	features Features
	limits   Limits
	label    string
	adapter  *Adapter
	deferred *resource.DeferredDeleteQueue
	released bool
}

// Queue returns the device's command queue.
func (d *Device) Queue() *Queue { return d.queue }

// Features returns the device's enabled features.
func (d *Device) Features() Features { return d.features }

// Limits returns the device's resource limits.
func (d *Device) Limits() Limits { return d.limits }

// halDevice returns the underlying hal.Device for direct resource creation.
func (d *Device) halDevice() hal.Device {
	if d.released {
		return nil
	}
	return d.hal
}

// CreateBuffer creates a GPU buffer, refcount starting at 1 (spec.md §4.1).
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: buffer descriptor is nil", ErrInvalidDescriptor)
	}

	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             desc.Size,
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	}

	halBuf, err := d.hal.CreateBuffer(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create buffer: %w", err)
	}

	b := &Buffer{hal: halBuf, device: d, size: desc.Size, usage: desc.Usage, label: desc.Label}
	b.Init(resource.KindBuffer, b)
	return b, nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *TextureDescriptor) (*Texture, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: texture descriptor is nil", ErrInvalidDescriptor)
	}

	halDesc := &hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, DepthOrArrayLayers: desc.Size.DepthOrArrayLayers},
		MipLevelCount: desc.MipLevelCount,
		SampleCount:   desc.SampleCount,
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         desc.Usage,
		ViewFormats:   desc.ViewFormats,
	}

	halTexture, err := d.hal.CreateTexture(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create texture: %w", err)
	}

	t := &Texture{hal: halTexture, device: d, format: desc.Format}
	t.Init(resource.KindTexture, t)
	return t, nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture *Texture, desc *TextureViewDescriptor) (*TextureView, error) {
	if d.released {
		return nil, ErrReleased
	}
	if texture == nil {
		return nil, fmt.Errorf("rhi: %w: texture is nil", ErrInvalidDescriptor)
	}

	halDesc := &hal.TextureViewDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.Format = desc.Format
		halDesc.Dimension = desc.Dimension
		halDesc.Aspect = desc.Aspect
		halDesc.BaseMipLevel = desc.BaseMipLevel
		halDesc.MipLevelCount = desc.MipLevelCount
		halDesc.BaseArrayLayer = desc.BaseArrayLayer
		halDesc.ArrayLayerCount = desc.ArrayLayerCount
	}

	halView, err := d.hal.CreateTextureView(texture.hal, halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create texture view: %w", err)
	}

	v := &TextureView{hal: halView, device: d, texture: texture}
	v.Init(resource.KindTextureView, v)
	return v, nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *SamplerDescriptor) (*Sampler, error) {
	if d.released {
		return nil, ErrReleased
	}

	halDesc := &hal.SamplerDescriptor{}
	if desc != nil {
		halDesc.Label = desc.Label
		halDesc.AddressModeU = desc.AddressModeU
		halDesc.AddressModeV = desc.AddressModeV
		halDesc.AddressModeW = desc.AddressModeW
		halDesc.MagFilter = desc.MagFilter
		halDesc.MinFilter = desc.MinFilter
		halDesc.MipmapFilter = desc.MipmapFilter
		halDesc.LodMinClamp = desc.LodMinClamp
		halDesc.LodMaxClamp = desc.LodMaxClamp
		halDesc.Compare = desc.Compare
		halDesc.Anisotropy = desc.Anisotropy
	}

	halSampler, err := d.hal.CreateSampler(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create sampler: %w", err)
	}

	s := &Sampler{hal: halSampler, device: d}
	s.Init(resource.KindSampler, s)
	return s, nil
}

// CreateShaderModule creates a shader module.
func (d *Device) CreateShaderModule(desc *ShaderModuleDescriptor) (*ShaderModule, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: shader module descriptor is nil", ErrInvalidDescriptor)
	}

	halDesc := &hal.ShaderModuleDescriptor{
		Label:  desc.Label,
		Source: hal.ShaderSource{WGSL: desc.WGSL, SPIRV: desc.SPIRV},
	}

	halModule, err := d.hal.CreateShaderModule(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create shader module: %w", err)
	}

	m := &ShaderModule{hal: halModule, device: d}
	m.Init(resource.KindShaderModule, m)
	return m, nil
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *BindGroupLayoutDescriptor) (*BindGroupLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: bind group layout descriptor is nil", ErrInvalidDescriptor)
	}

	halDesc := &hal.BindGroupLayoutDescriptor{Label: desc.Label, Entries: desc.Entries}

	halLayout, err := d.hal.CreateBindGroupLayout(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create bind group layout: %w", err)
	}

	l := &BindGroupLayout{hal: halLayout, device: d}
	l.Init(resource.KindDescriptorHeap, l)
	return l, nil
}

// CreatePipelineLayout creates a pipeline layout.
func (d *Device) CreatePipelineLayout(desc *PipelineLayoutDescriptor) (*PipelineLayout, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: pipeline layout descriptor is nil", ErrInvalidDescriptor)
	}

	halLayouts := make([]hal.BindGroupLayout, len(desc.BindGroupLayouts))
	for i, layout := range desc.BindGroupLayouts {
		halLayouts[i] = layout.hal
	}

	halDesc := &hal.PipelineLayoutDescriptor{Label: desc.Label, BindGroupLayouts: halLayouts}

	halLayout, err := d.hal.CreatePipelineLayout(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create pipeline layout: %w", err)
	}

	l := &PipelineLayout{hal: halLayout, device: d}
	l.Init(resource.KindDescriptorHeap, l)
	return l, nil
}

// CreateBindGroup creates a bind group.
func (d *Device) CreateBindGroup(desc *BindGroupDescriptor) (*BindGroup, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: bind group descriptor is nil", ErrInvalidDescriptor)
	}

	halEntries := make([]gputypes.BindGroupEntry, len(desc.Entries))
	for i, entry := range desc.Entries {
		halEntries[i] = entry.toHAL()
	}

	halDesc := &hal.BindGroupDescriptor{Label: desc.Label, Layout: desc.Layout.hal, Entries: halEntries}

	halGroup, err := d.hal.CreateBindGroup(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create bind group: %w", err)
	}

	g := &BindGroup{hal: halGroup, device: d}
	g.Init(resource.KindDescriptorHeap, g)
	return g, nil
}

// CreateRenderPipeline creates a render pipeline.
func (d *Device) CreateRenderPipeline(desc *RenderPipelineDescriptor) (*RenderPipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: render pipeline descriptor is nil", ErrInvalidDescriptor)
	}

	halPipeline, err := d.hal.CreateRenderPipeline(desc.toHAL())
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create render pipeline: %w", err)
	}

	p := &RenderPipeline{hal: halPipeline, device: d}
	p.Init(resource.KindPipelineState, p)
	return p, nil
}

// CreateComputePipeline creates a compute pipeline.
func (d *Device) CreateComputePipeline(desc *ComputePipelineDescriptor) (*ComputePipeline, error) {
	if d.released {
		return nil, ErrReleased
	}
	if desc == nil {
		return nil, fmt.Errorf("rhi: %w: compute pipeline descriptor is nil", ErrInvalidDescriptor)
	}

	halPipeline, err := d.hal.CreateComputePipeline(desc.toHAL())
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create compute pipeline: %w", err)
	}

	p := &ComputePipeline{hal: halPipeline, device: d}
	p.Init(resource.KindPipelineState, p)
	return p, nil
}

// CreateCommandEncoder creates a command encoder for recording GPU commands.
func (d *Device) CreateCommandEncoder(desc *CommandEncoderDescriptor) (*CommandEncoder, error) {
	if d.released {
		return nil, ErrReleased
	}

	var halDesc *hal.CommandEncoderDescriptor
	if desc != nil {
		halDesc = &hal.CommandEncoderDescriptor{Label: desc.Label}
	}

	halEncoder, err := d.hal.CreateCommandEncoder(halDesc)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to create command encoder: %w", err)
	}

	label := ""
	if desc != nil {
		label = desc.Label
	}
	if err := halEncoder.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("rhi: failed to begin command encoding: %w", err)
	}

	return &CommandEncoder{hal: halEncoder, device: d, kind: queue.Graphics}, nil
}

// WaitIdle waits for all GPU work on this device to complete, by flushing
// and blocking on the device's queue (spec.md's device-level barrier used
// before Release/teardown).
func (d *Device) WaitIdle() error {
	if d.released {
		return ErrReleased
	}
	if d.queue == nil {
		return nil
	}
	return d.queue.queue.Flush(0)
}

// Release releases the device and all associated resources. The
// deferred-delete queue is drained first, which releases the entries
// whose sync point has completed.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true

	d.deferred.Drain()
	if d.queue != nil {
		d.queue.release()
	}
	d.hal.Destroy()
}
