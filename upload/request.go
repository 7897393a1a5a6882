package upload

import (
	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// rowPitchAlignment is the row-pitch alignment every backend in the original
// requires for buffer<->texture copies (D3D12's
// D3D12_TEXTURE_DATA_PITCH_ALIGNMENT, 256 bytes).
const rowPitchAlignment = 256

// stagingAllocAlignment is the ring offset alignment texture staging
// allocations use, distinct from the row-pitch alignment above.
const stagingAllocAlignment = 512

// BufferUploadRequest names a CPU→GPU buffer copy: Src is copied into
// staging starting at byte 0, then a copy_buffer_region lands it at
// DestOffset within Dest.
type BufferUploadRequest struct {
	Dest       resource.Refcounted
	DestOffset uint64
	Src        []byte
}

// TextureUploadRequest names a CPU→GPU texture copy. BytesPerPixel (or
// per-block size, for compressed formats) is supplied by the caller since
// it is a property of the texture's pixel format, not of this package.
// SrcRowPitch is the pitch of Src as laid out in memory (zero means
// tightly packed, Width*BytesPerPixel); rows are copied one at a time
// into the 256-byte-aligned staging pitch the heap computes.
type TextureUploadRequest struct {
	Dest                 queue.ImageCopyTexture
	Src                  []byte
	SrcRowPitch          uint32
	Width, Height, Depth uint32
	BytesPerPixel        uint32
}

// TextureStaging is a texture-shaped staging allocation: a byte span plus
// the row/slice pitch the caller must use when recording the copy.
type TextureStaging struct {
	Allocation alloc.BufferAllocation
	RowPitch   uint32
	SlicePitch uint32
}

// IsValid reports whether the staging allocation succeeded.
func (s TextureStaging) IsValid() bool { return s.Allocation.IsValid() }
