package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// Sampler represents a texture sampler.
type Sampler struct {
	resource.Base

	hal    hal.Sampler
	device *Device
}

// NativeHandle returns the backend-specific sampler handle, for
// constructing a bind-group-entry resource reference directly against hal.
func (s *Sampler) NativeHandle() uintptr { return s.hal.NativeHandle() }

// Release drops this handle's reference.
func (s *Sampler) Release() { s.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (s *Sampler) ReleaseGPU() {
	if s.device != nil && s.device.hal != nil && s.hal != nil {
		s.device.hal.DestroySampler(s.hal)
	}
}
