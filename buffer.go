package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/resource"
)

// Buffer represents a GPU buffer. It embeds resource.Base for the
// intrusive refcount spec.md §4.1 requires of every GPU object.
type Buffer struct {
	resource.Base

	hal    hal.Buffer
	device *Device
	size   uint64
	usage  BufferUsage
	label  string
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// NativeHandle returns the backend-specific handle, for constructing a
// bind-group-entry resource reference directly against hal.
func (b *Buffer) NativeHandle() uintptr { return b.hal.NativeHandle() }

// Release drops this handle's reference. The underlying hal.Buffer is
// only destroyed once the refcount reaches zero (resource.Base.Release).
func (b *Buffer) Release() { b.Base.Release() }

// ReleaseGPU implements resource.Destroyer: it is called by resource.Base
// exactly once, when the refcount reaches zero.
func (b *Buffer) ReleaseGPU() {
	if b.device != nil && b.device.hal != nil && b.hal != nil {
		b.device.hal.DestroyBuffer(b.hal)
	}
}

// halBuffer returns the underlying hal.Buffer.
func (b *Buffer) halBuffer() hal.Buffer { return b.hal }
