package upload

import (
	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/queue"
)

// Heap is a ring-backed staging area mapped once for CPU writes. All
// synchronous upload operations allocate staging from it and record their
// copy on a caller-supplied context (spec.md §4.10).
type Heap struct {
	ring *alloc.Ring
}

// NewHeap wraps buf (which must be CPU-mapped) with a ring allocator
// retaining numBufferedFrames of allocation history.
func NewHeap(buf alloc.Buffer, numBufferedFrames uint32) *Heap {
	return &Heap{ring: alloc.NewRing(buf, numBufferedFrames)}
}

// BeginFrame/EndFrame forward to the backing ring, retiring staging space
// the GPU has finished reading from.
func (h *Heap) BeginFrame(frameIndex uint32, completedFrame uint64) {
	h.ring.BeginFrame(frameIndex, completedFrame)
}

func (h *Heap) EndFrame(frameNumber uint64) { h.ring.EndFrame(frameNumber) }

// Size is the backing ring's total capacity.
func (h *Heap) Size() uint64 { return h.ring.TotalSize() }

// UsedSize is the ring's currently-reserved span.
func (h *Heap) UsedSize() uint64 { return h.ring.UsedSize() }

// AllocateStaging reserves size bytes aligned to align from the ring.
func (h *Heap) AllocateStaging(size, align uint64) alloc.BufferAllocation {
	return h.ring.Allocate(size, align)
}

// AllocateTextureStaging reserves a row/slice-pitched span sized for a
// width x height texture of the given per-pixel (or per-block) byte size,
// row pitch rounded up to rowPitchAlignment as every backend requires for
// buffer<->texture copies.
func (h *Heap) AllocateTextureStaging(width, height, bytesPerPixel uint32) TextureStaging {
	rowPitch := alignUp32(width*bytesPerPixel, rowPitchAlignment)
	slicePitch := rowPitch * height
	allocation := h.ring.Allocate(uint64(slicePitch), stagingAllocAlignment)
	return TextureStaging{Allocation: allocation, RowPitch: rowPitch, SlicePitch: slicePitch}
}

// UploadBuffer copies req.Src into staging and records a copy_buffer_region
// on ctx landing it at req.DestOffset within req.Dest.
func (h *Heap) UploadBuffer(ctx queue.BaseContext, req BufferUploadRequest) error {
	if len(req.Src) == 0 {
		return ErrEmptySource
	}
	staging := h.AllocateStaging(uint64(len(req.Src)), 1)
	if !staging.IsValid() {
		return ErrStagingExhausted
	}
	staging.Write(req.Src)
	ctx.CopyBufferRegion(req.Dest, req.DestOffset, staging.Buffer, staging.Offset, staging.Size)
	return nil
}

// UploadTexture computes a 256-byte-aligned row pitch, copies row by row
// from req.Src (which may have a different source pitch) into staging,
// then records a copy_buffer_to_texture with the staging's row/slice
// pitch.
func (h *Heap) UploadTexture(ctx queue.BaseContext, req TextureUploadRequest) error {
	if len(req.Src) == 0 {
		return ErrEmptySource
	}
	staging := h.AllocateTextureStaging(req.Width, req.Height, req.BytesPerPixel)
	if !staging.IsValid() {
		return ErrStagingExhausted
	}

	srcPitch := req.SrcRowPitch
	if srcPitch == 0 {
		srcPitch = req.Width * req.BytesPerPixel
	}
	copyPitch := srcPitch
	if staging.RowPitch < copyPitch {
		copyPitch = staging.RowPitch
	}

	dst := staging.Allocation.CPU
	for depth := uint32(0); depth < maxUint32(req.Depth, 1); depth++ {
		for row := uint32(0); row < req.Height; row++ {
			srcOff := uint64(depth)*uint64(srcPitch)*uint64(req.Height) + uint64(row)*uint64(srcPitch)
			dstOff := uint64(depth)*uint64(staging.SlicePitch) + uint64(row)*uint64(staging.RowPitch)
			copy(dst[dstOff:dstOff+uint64(copyPitch)], req.Src[srcOff:srcOff+uint64(copyPitch)])
		}
	}

	layout := queue.ImageDataLayout{
		Offset:       staging.Allocation.Offset,
		BytesPerRow:  staging.RowPitch,
		RowsPerImage: req.Height,
	}
	size := queue.Extent3D{Width: req.Width, Height: req.Height, DepthOrArrayLayers: maxUint32(req.Depth, 1)}
	ctx.CopyBufferToTexture(staging.Allocation.Buffer, req.Dest, layout, size)
	return nil
}

func alignUp32(off, align uint32) uint32 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
