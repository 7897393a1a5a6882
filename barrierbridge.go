package rhi

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/barrier"
)

// barrierState converts a raw queue.BarrierTransition.Before/After value
// back to a barrier.State for use with stateToBufferUsage/stateToTextureUsage.
func barrierState(raw uint32) barrier.State {
	return barrier.State(raw)
}

// stateToBufferUsage maps a barrier.State bit pattern to the closest
// gputypes.BufferUsage flag, for the legacy (non-Enhanced-Barriers) hal
// path that still speaks in usage flags rather than barrier.Access/Layout
// (see barrier/enhanced.go's resolveEnhanced for the Enhanced Barriers
// equivalent of this mapping).
func stateToBufferUsage(s barrier.State) gputypes.BufferUsage {
	var u gputypes.BufferUsage
	if s&barrier.VertexBuffer != 0 {
		u |= gputypes.BufferUsageVertex
	}
	if s&barrier.IndexBuffer != 0 {
		u |= gputypes.BufferUsageIndex
	}
	if s&barrier.ConstantBuffer != 0 {
		u |= gputypes.BufferUsageUniform
	}
	if s&(barrier.ShaderResource|barrier.UnorderedAccess) != 0 {
		u |= gputypes.BufferUsageStorage
	}
	if s&barrier.CopySource != 0 {
		u |= gputypes.BufferUsageCopySrc
	}
	if s&barrier.CopyDest != 0 {
		u |= gputypes.BufferUsageCopyDst
	}
	if s&barrier.IndirectArgument != 0 {
		u |= gputypes.BufferUsageIndirect
	}
	return u
}

// stateToTextureUsage maps a barrier.State bit pattern to the closest
// gputypes.TextureUsage flag.
func stateToTextureUsage(s barrier.State) gputypes.TextureUsage {
	var u gputypes.TextureUsage
	if s&barrier.ShaderResource != 0 {
		u |= gputypes.TextureUsageTextureBinding
	}
	if s&barrier.UnorderedAccess != 0 {
		u |= gputypes.TextureUsageStorageBinding
	}
	if s&(barrier.RenderTarget|barrier.DepthWrite|barrier.DepthRead) != 0 {
		u |= gputypes.TextureUsageRenderAttachment
	}
	if s&barrier.CopySource != 0 {
		u |= gputypes.TextureUsageCopySrc
	}
	if s&barrier.CopyDest != 0 {
		u |= gputypes.TextureUsageCopyDst
	}
	return u
}
