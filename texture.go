package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// Texture represents a GPU texture.
type Texture struct {
	resource.Base

	hal    hal.Texture
	device *Device
	format TextureFormat
}

// Format returns the texture format.
func (t *Texture) Format() TextureFormat { return t.format }

// Release drops this handle's reference.
func (t *Texture) Release() { t.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (t *Texture) ReleaseGPU() {
	if t.device != nil && t.device.hal != nil && t.hal != nil {
		t.device.hal.DestroyTexture(t.hal)
	}
}

// TextureView represents a view into a texture.
type TextureView struct {
	resource.Base

	hal     hal.TextureView
	device  *Device
	texture *Texture
}

// NativeHandle returns the backend-specific view handle, for constructing
// a bind-group-entry resource reference directly against hal.
func (v *TextureView) NativeHandle() uintptr { return v.hal.NativeHandle() }

// Release drops this handle's reference.
func (v *TextureView) Release() { v.Base.Release() }

// ReleaseGPU implements resource.Destroyer.
func (v *TextureView) ReleaseGPU() {
	if v.device != nil && v.device.hal != nil && v.hal != nil {
		v.device.hal.DestroyTextureView(v.hal)
	}
}
