package alloc

import "github.com/gogpu/rhi/resource"

// Buffer is the backing GPU buffer an allocator carves BufferAllocation
// spans out of. Device-side creation is outside this package's scope
// (spec.md's External Interfaces boundary: the Device façade constructs
// buffers; allocators only manage offsets into one already created).
type Buffer interface {
	resource.Refcounted

	// Size is the buffer's total byte size.
	Size() uint64

	// GPUAddress is the buffer's base GPU virtual address.
	GPUAddress() uint64

	// Mapped returns the buffer's CPU-visible mapping, or nil if the
	// buffer was not created in an upload (CPU-mapped) heap.
	Mapped() []byte
}

// BufferAllocation is a borrowed span of a backing Buffer handed out by
// an allocator. Its lifetime is bounded by the backing buffer and, for
// ring-style allocators, the frame fence that eventually releases its
// offset range back to the allocator (spec.md §3).
type BufferAllocation struct {
	Buffer     Buffer
	Offset     uint64
	Size       uint64
	GPUAddress uint64
	CPU        []byte // nil unless Buffer.Mapped() is non-nil
}

// IsValid reports whether the allocation succeeded. An allocator that
// fails to find room returns the zero value, which callers must check
// before using it (spec.md §4.9: "failure is reported by returning an
// invalid BufferAllocation").
func (a BufferAllocation) IsValid() bool {
	return a.Buffer != nil && a.Size > 0
}

// Write copies data into the allocation's CPU-mapped region. It panics
// if the allocation has no CPU mapping or data does not fit — callers
// on a non-upload allocation must not call this.
func (a BufferAllocation) Write(data []byte) {
	if a.CPU == nil {
		panic("alloc: Write on a BufferAllocation with no CPU mapping")
	}
	if uint64(len(data)) > a.Size {
		panic("alloc: Write data exceeds allocation size")
	}
	copy(a.CPU, data)
}

// alignUp rounds off up to the next multiple of align, which must be a
// power of two (or zero, meaning "no alignment requirement").
func alignUp(off, align uint64) uint64 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}
