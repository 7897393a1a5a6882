package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// BindGroupLayout defines the structure of resource bindings for shaders.
type BindGroupLayout struct {
	resource.Base

	hal    hal.BindGroupLayout
	device *Device
}

// Release drops this handle's reference.
func (l *BindGroupLayout) Release() { l.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (l *BindGroupLayout) ReleaseGPU() {
	if l.device != nil && l.device.hal != nil && l.hal != nil {
		l.device.hal.DestroyBindGroupLayout(l.hal)
	}
}

// PipelineLayout defines the resource layout for a pipeline.
type PipelineLayout struct {
	resource.Base

	hal    hal.PipelineLayout
	device *Device
}

// Release drops this handle's reference.
func (l *PipelineLayout) Release() { l.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (l *PipelineLayout) ReleaseGPU() {
	if l.device != nil && l.device.hal != nil && l.hal != nil {
		l.device.hal.DestroyPipelineLayout(l.hal)
	}
}

// BindGroup represents bound GPU resources for shader access.
type BindGroup struct {
	resource.Base

	hal    hal.BindGroup
	device *Device
}

// Release drops this handle's reference.
func (g *BindGroup) Release() { g.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (g *BindGroup) ReleaseGPU() {
	if g.device != nil && g.device.hal != nil && g.hal != nil {
		g.device.hal.DestroyBindGroup(g.hal)
	}
}
