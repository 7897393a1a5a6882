package readback

import (
	"github.com/gogpu/rhi/alloc"
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/queue"
)

// textureRowPitchAlignment matches upload's staging row-pitch alignment:
// every backend requires buffer<->texture copies to use a 256-byte-
// aligned row pitch.
const textureRowPitchAlignment = 256

// TextureReadback is the texture analogue of BufferReadback: it knows its
// own row/slice pitch, computed the same way upload's staging does
// (spec.md §4.11, "same pattern, with row/slice pitch known to the
// resource").
type TextureReadback struct {
	BufferReadback

	rowPitch, slicePitch uint32
	width, height        uint32
}

// NewTextureReadback creates a TextureReadback backed by buf.
func NewTextureReadback(buf alloc.Buffer, signal gpusync.QueueSignaler, tracker *gpusync.FenceValueTracker) *TextureReadback {
	return &TextureReadback{BufferReadback: BufferReadback{buffer: buf, signal: signal, tracker: tracker}}
}

// EnqueueCopy records a copy_texture_to_buffer of src into this
// readback's staging, computing a 256-byte-aligned row pitch for it.
func (t *TextureReadback) EnqueueCopy(ctx queue.BaseContext, src queue.ImageCopyTexture, width, height, bytesPerPixel uint32) error {
	rowPitch := alignUp32(width*bytesPerPixel, textureRowPitchAlignment)
	slicePitch := rowPitch * height

	layout := queue.ImageDataLayout{BytesPerRow: rowPitch, RowsPerImage: height}
	size := queue.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	ctx.CopyTextureToBuffer(src, t.buffer, layout, size)

	v, err := t.tracker.Signal(t.signal)
	if err != nil {
		return err
	}
	t.fenceValue = v
	t.size = uint64(slicePitch)
	t.rowPitch = rowPitch
	t.slicePitch = slicePitch
	t.width, t.height = width, height
	return nil
}

// RowPitch and SlicePitch report the staging layout of the most recently
// enqueued copy.
func (t *TextureReadback) RowPitch() uint32   { return t.rowPitch }
func (t *TextureReadback) SlicePitch() uint32 { return t.slicePitch }
func (t *TextureReadback) Width() uint32      { return t.width }
func (t *TextureReadback) Height() uint32     { return t.height }

func alignUp32(off, align uint32) uint32 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}
