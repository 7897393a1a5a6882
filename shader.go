package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// ShaderModule represents a compiled shader module.
type ShaderModule struct {
	resource.Base

	hal    hal.ShaderModule
	device *Device
}

// Release drops this handle's reference.
func (m *ShaderModule) Release() { m.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (m *ShaderModule) ReleaseGPU() {
	if m.device != nil && m.device.hal != nil && m.hal != nil {
		m.device.hal.DestroyShaderModule(m.hal)
	}
}
