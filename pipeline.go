package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// RenderPipeline represents a configured render pipeline.
type RenderPipeline struct {
	resource.Base

	hal    hal.RenderPipeline
	device *Device
}

// Release drops this handle's reference.
func (p *RenderPipeline) Release() { p.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (p *RenderPipeline) ReleaseGPU() {
	if p.device != nil && p.device.hal != nil && p.hal != nil {
		p.device.hal.DestroyRenderPipeline(p.hal)
	}
}

// ComputePipeline represents a configured compute pipeline.
type ComputePipeline struct {
	resource.Base

	hal    hal.ComputePipeline
	device *Device
}

// Release drops this handle's reference.
func (p *ComputePipeline) Release() { p.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (p *ComputePipeline) ReleaseGPU() {
	if p.device != nil && p.device.hal != nil && p.hal != nil {
		p.device.hal.DestroyComputePipeline(p.hal)
	}
}
