package upload

import (
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// MipGenerationFunc generates the mip chain for tex below its base level.
// Mipmap generation is backend-dependent (a compute shader dispatch), so
// TextureLoader only holds a pass-through hook for it rather than
// implementing it — callers wire in their backend's implementation, or
// leave it nil to skip mip generation entirely.
type MipGenerationFunc func(ctx queue.ComputeContext, tex resource.Refcounted) error

// MipLevelData names one level's worth of source data for
// LoadFromMipData.
type MipLevelData struct {
	Data     []byte
	Width    uint32
	Height   uint32
	RowPitch uint32
}

// TextureLoader consumes an AsyncManager for bulk loads and owns a
// synchronous Heap for small, one-shot ones (spec.md §4.10). Texture
// creation itself is outside this package's scope — callers pass an
// already-created texture resource; the loader only stages and copies.
type TextureLoader struct {
	async *AsyncManager
	sync  *Heap

	// GenerateMipmaps holds the caller's mip generation hook. Nil by
	// default; none of TextureLoader's load methods invokes it.
	GenerateMipmaps MipGenerationFunc
}

// NewTextureLoader creates a TextureLoader bulk-loading through async and
// one-shot-loading through sync.
func NewTextureLoader(async *AsyncManager, sync *Heap) *TextureLoader {
	return &TextureLoader{async: async, sync: sync}
}

// LoadFromMemory is the small, one-shot load path: it stages and copies
// synchronously through the loader's own Heap.
func (l *TextureLoader) LoadFromMemory(ctx queue.BaseContext, tex resource.Refcounted, data []byte, width, height, bytesPerPixel uint32) error {
	req := TextureUploadRequest{
		Dest:          queue.ImageCopyTexture{Texture: tex},
		Src:           data,
		Width:         width,
		Height:        height,
		Depth:         1,
		BytesPerPixel: bytesPerPixel,
	}
	return l.sync.UploadTexture(ctx, req)
}

// LoadFromRawData is the bulk load path: it stages and copies through the
// async upload manager, returning a handle the caller can wait on or gate
// graphics-queue reads with.
func (l *TextureLoader) LoadFromRawData(ctx queue.BaseContext, tex resource.Refcounted, data []byte, width, height, depth, bytesPerPixel uint32) (AsyncUploadHandle, error) {
	req := TextureUploadRequest{
		Dest:          queue.ImageCopyTexture{Texture: tex},
		Src:           data,
		Width:         width,
		Height:        height,
		Depth:         depth,
		BytesPerPixel: bytesPerPixel,
	}
	return l.async.UploadTextureAsync(ctx, req)
}

// LoadFromMipData uploads each supplied mip level to its corresponding
// MipLevel of tex, bulk-loading through the async upload manager.
func (l *TextureLoader) LoadFromMipData(ctx queue.BaseContext, tex resource.Refcounted, bytesPerPixel uint32, mips []MipLevelData) ([]AsyncUploadHandle, error) {
	handles := make([]AsyncUploadHandle, 0, len(mips))
	for level, mip := range mips {
		req := TextureUploadRequest{
			Dest:          queue.ImageCopyTexture{Texture: tex, MipLevel: uint32(level)},
			Src:           mip.Data,
			SrcRowPitch:   mip.RowPitch,
			Width:         mip.Width,
			Height:        mip.Height,
			Depth:         1,
			BytesPerPixel: bytesPerPixel,
		}
		handle, err := l.async.UploadTextureAsync(ctx, req)
		if err != nil {
			return handles, err
		}
		handles = append(handles, handle)
	}
	return handles, nil
}
