package rhi

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// CommandEncoder records GPU commands for later submission. It satisfies
// queue.ComputeContext (spec.md §4.4/§4.6), so a barrier.Batch/Scope built
// over it can target it directly as the recording surface their
// auto-submitted transitions flow into — BeginRenderPass/BeginComputePass
// below return pass-scoped encoders for the draw/dispatch surface itself,
// matching this module's render/compute-pass-structured hal boundary
// rather than queue.GraphicsContext's flatter shape.
//
// A command encoder is single-use. After calling Finish(), the encoder
// cannot be used again. Call Device.CreateCommandEncoder() to create a new
// one.
//
// NOT thread-safe - do not use from multiple goroutines.
type CommandEncoder struct {
	hal      hal.CommandEncoder
	device   *Device
	kind     queue.Kind
	finished bool
}

var _ queue.ComputeContext = (*CommandEncoder)(nil)

// Kind reports which queue family this recording targets.
func (e *CommandEncoder) Kind() queue.Kind { return e.kind }

// InsertDebugMarker, BeginDebugEvent, EndDebugEvent are no-ops here: this
// module's hal.CommandEncoder exposes no inline debug-marker recording
// call (PIX/RenderDoc-style markers live on queue.Backend instead, at
// submission time).
func (e *CommandEncoder) InsertDebugMarker(name string, color uint32) {}
func (e *CommandEncoder) BeginDebugEvent(name string, color uint32)   {}
func (e *CommandEncoder) EndDebugEvent()                              {}

// EmitBarriers records a native transition-barrier call for transitions,
// called by a barrier.Batch when it auto-submits. Each transition's
// before/after barrier.State is mapped to the nearest gputypes usage flag
// via stateToBufferUsage/stateToTextureUsage, since hal's legacy (non-
// Enhanced-Barriers) Transition* calls still speak in usage flags.
func (e *CommandEncoder) EmitBarriers(transitions []queue.BarrierTransition) {
	var bufs []hal.BufferBarrier
	var texs []hal.TextureBarrier
	for _, t := range transitions {
		switch r := t.Resource.(type) {
		case *Buffer:
			bufs = append(bufs, hal.BufferBarrier{
				Buffer: r.hal,
				Usage: hal.BufferUsageTransition{
					OldUsage: stateToBufferUsage(barrierState(t.Before)),
					NewUsage: stateToBufferUsage(barrierState(t.After)),
				},
			})
		case *Texture:
			texs = append(texs, hal.TextureBarrier{
				Texture: r.hal,
				Usage: hal.TextureUsageTransition{
					OldUsage: stateToTextureUsage(barrierState(t.Before)),
					NewUsage: stateToTextureUsage(barrierState(t.After)),
				},
			})
		}
	}
	if len(bufs) > 0 {
		e.hal.TransitionBuffers(bufs)
	}
	if len(texs) > 0 {
		e.hal.TransitionTextures(texs)
	}
}

// EmitAliasingBarriers is a no-op: this module's hal boundary exposes no
// placed-resource aliasing-barrier primitive.
func (e *CommandEncoder) EmitAliasingBarriers(barriers []queue.AliasingTransition) {}

// CopyBufferRegion copies a region between two resource.Refcounted buffers.
func (e *CommandEncoder) CopyBufferRegion(dst resource.Refcounted, dstOffset uint64, src resource.Refcounted, srcOffset uint64, size uint64) {
	s, sok := src.(*Buffer)
	d, dok := dst.(*Buffer)
	if !sok || !dok {
		return
	}
	e.hal.CopyBufferToBuffer(s.hal, d.hal, []hal.BufferCopy{{SrcOffset: srcOffset, DstOffset: dstOffset, Size: size}})
}

// CopyBufferToTexture copies from a buffer into a texture region.
func (e *CommandEncoder) CopyBufferToTexture(src resource.Refcounted, dst queue.ImageCopyTexture, layout queue.ImageDataLayout, size queue.Extent3D) {
	s, sok := src.(*Buffer)
	d, dok := dst.Texture.(*Texture)
	if !sok || !dok {
		return
	}
	e.hal.CopyBufferToTexture(s.hal, d.hal, []hal.BufferTextureCopy{toHALBufferTextureCopy(dst, layout, size)})
}

// CopyTextureToBuffer copies from a texture region into a buffer.
func (e *CommandEncoder) CopyTextureToBuffer(src queue.ImageCopyTexture, dst resource.Refcounted, layout queue.ImageDataLayout, size queue.Extent3D) {
	s, sok := src.Texture.(*Texture)
	d, dok := dst.(*Buffer)
	if !sok || !dok {
		return
	}
	e.hal.CopyTextureToBuffer(s.hal, d.hal, []hal.BufferTextureCopy{toHALBufferTextureCopy(src, layout, size)})
}

// CopyTextureToTexture copies between two texture regions.
func (e *CommandEncoder) CopyTextureToTexture(src, dst queue.ImageCopyTexture, size queue.Extent3D) {
	s, sok := src.Texture.(*Texture)
	d, dok := dst.Texture.(*Texture)
	if !sok || !dok {
		return
	}
	e.hal.CopyTextureToTexture(s.hal, d.hal, []hal.TextureCopy{{
		SrcBase: hal.ImageCopyTexture{MipLevel: src.MipLevel, Origin: hal.Origin3D{X: src.Origin.X, Y: src.Origin.Y, Z: src.Origin.Z}},
		DstBase: hal.ImageCopyTexture{MipLevel: dst.MipLevel, Origin: hal.Origin3D{X: dst.Origin.X, Y: dst.Origin.Y, Z: dst.Origin.Z}},
		Size:    hal.Extent3D{Width: size.Width, Height: size.Height, DepthOrArrayLayers: size.DepthOrArrayLayers},
	}})
}

func toHALBufferTextureCopy(tex queue.ImageCopyTexture, layout queue.ImageDataLayout, size queue.Extent3D) hal.BufferTextureCopy {
	return hal.BufferTextureCopy{
		BufferLayout: hal.ImageDataLayout{Offset: layout.Offset, BytesPerRow: layout.BytesPerRow, RowsPerImage: layout.RowsPerImage},
		TextureBase:  hal.ImageCopyTexture{MipLevel: tex.MipLevel, Origin: hal.Origin3D{X: tex.Origin.X, Y: tex.Origin.Y, Z: tex.Origin.Z}},
		Size:         hal.Extent3D{Width: size.Width, Height: size.Height, DepthOrArrayLayers: size.DepthOrArrayLayers},
	}
}

// BindDescriptorHeap is a no-op: this module's bind-group model (spec.md
// §4.10's descriptor sets) is bound per-pass via RenderPassEncoder/
// ComputePassEncoder.SetBindGroup, not a standalone heap-binding call.
func (e *CommandEncoder) BindDescriptorHeap(heap queue.DescriptorHeap) {}

// BeginQuery, EndQuery, ResolveQueryData are no-ops here: inline query
// recording against a raw hal.CommandEncoder is not exposed by this
// module's hal boundary. The query and readback packages are the
// supported path for GPU queries and their readback (spec.md C11/C12).
func (e *CommandEncoder) BeginQuery(heap queue.QueryHeap, index uint32) {}
func (e *CommandEncoder) EndQuery(heap queue.QueryHeap, index uint32)   {}
func (e *CommandEncoder) ResolveQueryData(heap queue.QueryHeap, start, count uint32, dst resource.Refcounted, dstOffset uint64) {
}

// Dispatch, DispatchIndirect, ClearUnorderedAccessView, and UAVBarrier
// satisfy queue.ComputeContext at the encoder level for a barrier.Batch's
// benefit, but real dispatch recording happens through the pass-scoped
// ComputePassEncoder returned by BeginComputePass — a bare Dispatch here
// (outside any pass) has no hal compute-pass to record into and is a
// documented no-op rather than an implicitly-opened pass.
func (e *CommandEncoder) Dispatch(x, y, z uint32)                                          {}
func (e *CommandEncoder) DispatchIndirect(argsBuffer resource.Refcounted, argsOffset uint64) {}
func (e *CommandEncoder) ClearUnorderedAccessView(target resource.Refcounted, value [4]uint32) {
}
func (e *CommandEncoder) UAVBarrier(resources []resource.Refcounted) {}

// BeginRenderPass begins a render pass. The returned RenderPassEncoder
// records draw commands; call RenderPassEncoder.End() when done.
func (e *CommandEncoder) BeginRenderPass(desc *RenderPassDescriptor) (*RenderPassEncoder, error) {
	if e.finished {
		return nil, ErrReleased
	}
	if desc == nil {
		desc = &RenderPassDescriptor{}
	}
	pass := e.hal.BeginRenderPass(desc.toHAL())
	return &RenderPassEncoder{hal: pass, encoder: e}, nil
}

// BeginComputePass begins a compute pass. The returned ComputePassEncoder
// records dispatch commands; call ComputePassEncoder.End() when done.
func (e *CommandEncoder) BeginComputePass(desc *ComputePassDescriptor) (*ComputePassEncoder, error) {
	if e.finished {
		return nil, ErrReleased
	}
	if desc == nil {
		desc = &ComputePassDescriptor{}
	}
	pass := e.hal.BeginComputePass(desc.toHAL())
	return &ComputePassEncoder{hal: pass, encoder: e}, nil
}

// Finish completes command recording and returns a CommandBuffer. After
// calling Finish(), the encoder cannot be used again.
func (e *CommandEncoder) Finish() (*CommandBuffer, error) {
	if e.finished {
		return nil, ErrReleased
	}
	e.finished = true

	buf, err := e.hal.EndEncoding()
	if err != nil {
		return nil, err
	}

	return &CommandBuffer{hal: buf, device: e.device}, nil
}

// Close satisfies queue.BaseContext: it finishes recording and returns the
// resulting CommandList, ready for Queue.Execute by way of a barrier.Batch
// auto-submit. Public callers record through Finish(), which returns a
// *CommandBuffer directly instead of the package-qualified interface type.
func (e *CommandEncoder) Close() (queue.CommandList, error) {
	buf, err := e.Finish()
	if err != nil {
		return nil, err
	}
	return &halCommandList{buf: buf.hal, kind: e.kind}, nil
}

// CommandBuffer holds recorded GPU commands ready for submission. Created
// by CommandEncoder.Finish().
type CommandBuffer struct {
	hal    hal.CommandBuffer
	device *Device
}
