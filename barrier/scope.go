package barrier

import "github.com/gogpu/rhi/resource"

// Scope is the auto-barrier scope from spec.md §4.6: bound to a context's
// Tracker and (optionally) a GlobalStateManager, it exposes high-level
// usage intents instead of raw state values. Each intent maps to exactly
// one required State and calls Tracker.RequireState.
type Scope struct {
	tracker *Tracker
	batch   *Batch
	global  *GlobalStateManager
}

// NewScope binds tracker and batch (the staging buffer commands' barriers
// flow into); global may be nil for a context that never reconciles
// against cross-context state.
func NewScope(tracker *Tracker, batch *Batch, global *GlobalStateManager) *Scope {
	return &Scope{tracker: tracker, batch: batch, global: global}
}

func (s *Scope) require(res resource.Refcounted, subresourceCount, subresource uint32, state State) error {
	return s.tracker.RequireState(res, subresourceCount, subresource, state)
}

// UseAsShaderResource requires texture (or buffer) to be readable by
// shaders, on the given subresource (AllSubresources for the whole
// resource).
func (s *Scope) UseAsShaderResource(res resource.Refcounted, subresourceCount, subresource uint32) error {
	return s.require(res, subresourceCount, subresource, ShaderResource)
}

// UseAsRenderTarget requires texture to be bound as a color attachment.
func (s *Scope) UseAsRenderTarget(res resource.Refcounted, subresourceCount, subresource uint32) error {
	return s.require(res, subresourceCount, subresource, RenderTarget)
}

// UseAsDepthStencil requires texture to be bound as a depth/stencil
// attachment, in either writable or read-only depth mode.
func (s *Scope) UseAsDepthStencil(res resource.Refcounted, subresourceCount, subresource uint32, write bool) error {
	state := DepthRead
	if write {
		state = DepthWrite
	}
	return s.require(res, subresourceCount, subresource, state)
}

// UseAsUAV requires res (texture or buffer) to be accessible as an
// unordered access view.
func (s *Scope) UseAsUAV(res resource.Refcounted, subresourceCount, subresource uint32) error {
	return s.require(res, subresourceCount, subresource, UnorderedAccess)
}

// UseAsCopyDest requires res to be a copy destination.
func (s *Scope) UseAsCopyDest(res resource.Refcounted, subresourceCount, subresource uint32) error {
	return s.require(res, subresourceCount, subresource, CopyDest)
}

// UseAsCopySource requires res to be a copy source.
func (s *Scope) UseAsCopySource(res resource.Refcounted, subresourceCount, subresource uint32) error {
	return s.require(res, subresourceCount, subresource, CopySource)
}

// UseAsVertexBuffer requires res to be bound as a vertex buffer.
func (s *Scope) UseAsVertexBuffer(res resource.Refcounted) error {
	return s.require(res, 1, AllSubresources, VertexBuffer)
}

// UseAsIndexBuffer requires res to be bound as an index buffer.
func (s *Scope) UseAsIndexBuffer(res resource.Refcounted) error {
	return s.require(res, 1, AllSubresources, IndexBuffer)
}

// UseAsConstantBuffer requires res to be bound as a constant buffer.
func (s *Scope) UseAsConstantBuffer(res resource.Refcounted) error {
	return s.require(res, 1, AllSubresources, ConstantBuffer)
}

// FlushBarriers drains the tracker's pending transitions into the bound
// batch, translating each into a queue.BarrierTransition, then clears the
// tracker's pending list. Transitions are drained in insertion order to
// preserve dependencies when two pending transitions touch the same
// resource in sequence.
func (s *Scope) FlushBarriers() error {
	for _, t := range s.tracker.PendingBarriers() {
		if !t.NeedsBarrier() {
			continue
		}
		if err := s.batch.AddTransition(toQueueTransition(t)); err != nil {
			return err
		}
	}
	s.tracker.ClearPending()
	return nil
}

// Finalize flushes once more and, if a GlobalStateManager is bound,
// commits the tracker's final local states to it (spec.md §4.8).
func (s *Scope) Finalize() error {
	if err := s.FlushBarriers(); err != nil {
		return err
	}
	if s.global != nil {
		s.global.CommitLocalStates(s.tracker)
	}
	return s.batch.Submit()
}
