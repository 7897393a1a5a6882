package query

import (
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// TextureFactory constructs a mip-chained R32-float texture, used by
// HiZBuffer to create (and recreate, on resize) its backing texture.
// The Device façade owns actual texture creation; this package only
// manages the HiZ buffer's lifetime and mip-chain shape.
type TextureFactory func(width, height, mipLevels uint32) (resource.Refcounted, error)

// SRVFactory constructs a shader-resource view over texture exposing
// mipLevels levels.
type SRVFactory func(texture resource.Refcounted, mipLevels uint32) (resource.Refcounted, error)

// MipReduceFunc runs one step of the HiZ chain's min-reduction: level 0
// downsamples depthBuffer into the HiZ texture's mip 0, and every level
// after that reduces the previous mip of the HiZ texture into the next.
// The actual compute dispatch is backend-dependent (a compute shader and
// PSO), so it is a caller-supplied hook, the same pattern as
// upload.MipGenerationFunc.
type MipReduceFunc func(ctx queue.ComputeContext, depthBuffer, hiZTexture resource.Refcounted, level uint32) error

// Buffer is a mip-chained R32F texture used for hierarchical occlusion
// culling: each mip level holds the minimum depth of its 2x2 footprint
// in the level below, so a single texel fetch at the right mip can
// conservatively test a whole screen-space bounding rect against depth
// (spec.md §4.12, original_source/RHIOcclusion.h's RHIHiZBuffer).
type Buffer struct {
	newTexture TextureFactory
	newSRV     SRVFactory

	texture resource.Refcounted
	srv     resource.Refcounted

	width, height uint32
	mipCount      uint32
}

// NewBuffer creates a Buffer that builds its texture/SRV through
// newTexture/newSRV.
func NewBuffer(newTexture TextureFactory, newSRV SRVFactory) *Buffer {
	return &Buffer{newTexture: newTexture, newSRV: newSRV}
}

// MipLevelCountFor returns ceil(log2(max(width, height))) + 1, the
// number of mip levels a HiZ chain needs to reduce down to a 1x1 texel.
func MipLevelCountFor(width, height uint32) uint32 {
	maxDim := width
	if height > maxDim {
		maxDim = height
	}
	count := uint32(1)
	for maxDim > 1 {
		maxDim >>= 1
		count++
	}
	return count
}

// Initialize (re)builds the HiZ texture and SRV for the given
// dimensions.
func (b *Buffer) Initialize(width, height uint32) error {
	b.width, b.height = width, height
	b.mipCount = MipLevelCountFor(width, height)

	tex, err := b.newTexture(width, height, b.mipCount)
	if err != nil {
		return err
	}
	srv, err := b.newSRV(tex, b.mipCount)
	if err != nil {
		tex.Release()
		return err
	}
	b.texture = tex
	b.srv = srv
	return nil
}

// Shutdown releases the HiZ texture and SRV.
func (b *Buffer) Shutdown() {
	if b.srv != nil {
		b.srv.Release()
		b.srv = nil
	}
	if b.texture != nil {
		b.texture.Release()
		b.texture = nil
	}
}

// Resize rebuilds the HiZ texture/SRV at the new dimensions, a no-op if
// they haven't changed.
func (b *Buffer) Resize(width, height uint32) error {
	if width == b.width && height == b.height {
		return nil
	}
	b.Shutdown()
	return b.Initialize(width, height)
}

// Generate runs the mip-chain min-reduction from depthBuffer down
// through every HiZ mip level via reduce.
func (b *Buffer) Generate(ctx queue.ComputeContext, depthBuffer resource.Refcounted, reduce MipReduceFunc) error {
	if reduce == nil {
		return nil
	}
	for level := uint32(0); level < b.mipCount; level++ {
		if err := reduce(ctx, depthBuffer, b.texture, level); err != nil {
			return err
		}
	}
	return nil
}

// Texture returns the HiZ texture.
func (b *Buffer) Texture() resource.Refcounted { return b.texture }

// MipLevelCount returns the number of mip levels in the HiZ chain.
func (b *Buffer) MipLevelCount() uint32 { return b.mipCount }

// SRV returns the shader-resource view over the full HiZ mip chain.
func (b *Buffer) SRV() resource.Refcounted { return b.srv }
