package queue

import "github.com/gogpu/rhi/resource"

// BarrierTransition is the native payload a Context's EmitBarriers sends to
// the backend — the subset of a transition barrier the context recorder
// needs to know (the barrier package's Tracker/Batch own the logic that
// decides when these are emitted; Context only knows how to record them).
type BarrierTransition struct {
	Resource      resource.Refcounted
	Subresource   uint32 // spec's ALL sentinel is represented by ^uint32(0)
	Before, After uint32 // backend-defined state bit patterns
}

// AllSubresources is the sentinel meaning "every subresource", matching
// require_state's subresource=ALL default.
const AllSubresources = ^uint32(0)

// AliasingTransition names a placed-resource aliasing barrier: before must
// finish all access to its backing memory before after may begin using it.
type AliasingTransition struct {
	Before, After resource.Refcounted
}

// Extent3D, Origin3D mirror the teacher's hal copy-region shape.
type Extent3D struct{ Width, Height, DepthOrArrayLayers uint32 }
type Origin3D struct{ X, Y, Z uint32 }

// ImageCopyTexture names a texture subresource + origin for a copy.
type ImageCopyTexture struct {
	Texture  resource.Refcounted
	MipLevel uint32
	Origin   Origin3D
}

// BufferCopy is a buffer-to-buffer copy region.
type BufferCopy struct {
	SrcOffset, DstOffset, Size uint64
}

// ImageDataLayout describes a buffer-side image layout for buffer<->texture
// copies.
type ImageDataLayout struct {
	Offset       uint64
	BytesPerRow  uint32
	RowsPerImage uint32
}

// BufferTextureCopy is a buffer<->texture copy region.
type BufferTextureCopy struct {
	BufferLayout ImageDataLayout
	TextureBase  ImageCopyTexture
	Size         Extent3D
}

// Viewport and Rect describe the rasterizer's viewport/scissor state.
type Viewport struct{ X, Y, Width, Height, MinDepth, MaxDepth float32 }
type Rect struct{ X, Y, Width, Height uint32 }

// VertexBufferView and IndexBufferView bind an input-assembler slot.
type VertexBufferView struct {
	Buffer resource.Refcounted
	Offset uint64
	Stride uint32
}

type IndexBufferView struct {
	Buffer resource.Refcounted
	Offset uint64
	Is32Bit bool
}

// DescriptorHeap, QueryHeap are opaque handles bound by BaseContext; their
// concrete shape lives in the hal boundary.
type DescriptorHeap interface{ resource.Refcounted }
type QueryHeap interface{ resource.Refcounted }

// RenderPassDescriptor is a thin pass-through descriptor; per-attachment
// detail lives at the hal boundary and is opaque to queue.
type RenderPassDescriptor struct {
	Name string
}

// BaseContext is the recording surface every Context composes: barriers,
// copies, debug markers, queries, descriptor-heap binding (spec §4.4).
type BaseContext interface {
	Kind() Kind

	InsertDebugMarker(name string, color uint32)
	BeginDebugEvent(name string, color uint32)
	EndDebugEvent()

	// EmitBarriers records a native barrier call for transitions. Called by
	// the barrier package's Batch when it auto-submits.
	EmitBarriers(transitions []BarrierTransition)

	// EmitAliasingBarriers records a native aliasing barrier call. Called by
	// the barrier package's Batch when it auto-submits.
	EmitAliasingBarriers(barriers []AliasingTransition)

	CopyBufferRegion(dst resource.Refcounted, dstOffset uint64, src resource.Refcounted, srcOffset uint64, size uint64)
	CopyBufferToTexture(src resource.Refcounted, dst ImageCopyTexture, layout ImageDataLayout, size Extent3D)
	CopyTextureToBuffer(src ImageCopyTexture, dst resource.Refcounted, layout ImageDataLayout, size Extent3D)
	CopyTextureToTexture(src, dst ImageCopyTexture, size Extent3D)

	BindDescriptorHeap(heap DescriptorHeap)

	BeginQuery(heap QueryHeap, index uint32)
	EndQuery(heap QueryHeap, index uint32)
	ResolveQueryData(heap QueryHeap, start, count uint32, dst resource.Refcounted, dstOffset uint64)

	// Close finishes recording and returns the resulting CommandList, ready
	// for Queue.Execute. The Context must not be used again afterward.
	Close() (CommandList, error)
}

// ComputeContext adds dispatch and UAV operations over BaseContext.
type ComputeContext interface {
	BaseContext

	Dispatch(x, y, z uint32)
	DispatchIndirect(argsBuffer resource.Refcounted, argsOffset uint64)
	ClearUnorderedAccessView(target resource.Refcounted, value [4]uint32)
	// UAVBarrier records a UAV barrier for each of resources without going
	// through the transition-barrier path (no before/after state change).
	UAVBarrier(resources []resource.Refcounted)
}

// GraphicsContext adds drawing, render passes, and the rest of the
// graphics pipeline state over ComputeContext.
type GraphicsContext interface {
	ComputeContext

	BeginRenderPass(desc RenderPassDescriptor)
	EndRenderPass()

	SetViewport(vp Viewport)
	SetScissorRect(r Rect)
	SetDepthBounds(min, max float32)

	SetVertexBuffers(startSlot uint32, views []VertexBufferView)
	SetIndexBuffer(view IndexBufferView)

	Draw(vertexCount, instanceCount, startVertex, startInstance uint32)
	DrawIndexed(indexCount, instanceCount, startIndex uint32, baseVertex int32, startInstance uint32)
	DrawIndirect(argsBuffer resource.Refcounted, argsOffset uint64)
	ExecuteIndirect(maxCount uint32, argsBuffer resource.Refcounted, argsOffset uint64, countBuffer resource.Refcounted, countOffset uint64)

	// DispatchMesh issues a mesh-shading dispatch; it touches the core's
	// data model only at the barrier-scope level (the draw's own state
	// requirements), so it is otherwise a thin pass-through.
	DispatchMesh(x, y, z uint32)
}
