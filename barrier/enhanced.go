package barrier

import "github.com/gogpu/rhi/resource"

// Sync is a D3D12-Enhanced-Barrier-style pipeline sync scope, a bitmask
// so a transition can wait on or signal several pipeline stages at once
// (original_source/RHIBarrier.h's ERHIBarrierSync, a RHI_ENUM_CLASS_FLAGS
// bitmask enum — Phase-2 "Enhanced Barriers" section).
type Sync uint32

const (
	SyncNone            Sync = 0
	SyncAll             Sync = ^Sync(0)
	SyncDraw            Sync = 1 << 0
	SyncIndexInput      Sync = 1 << 1
	SyncVertexShading   Sync = 1 << 2
	SyncPixelShading    Sync = 1 << 3
	SyncDepthStencil    Sync = 1 << 4
	SyncRenderTarget    Sync = 1 << 5
	SyncCompute         Sync = 1 << 6
	SyncCopy            Sync = 1 << 8
	SyncResolve         Sync = 1 << 9
	SyncExecuteIndirect Sync = 1 << 10
	SyncSplit           Sync = 1 << 31
)

// Access is a D3D12-Enhanced-Barrier-style memory access scope, a
// bitmask distinct from the legacy State enum: State names a resource's
// *overall usage*, Access names the *specific memory operations* a
// transition's before/after halves need synchronized (original_source's
// ERHIBarrierAccess).
type Access uint32

const (
	AccessNone              Access = 0
	AccessVertexBuffer      Access = 1 << 0
	AccessConstantBuffer    Access = 1 << 1
	AccessIndexBuffer       Access = 1 << 2
	AccessRenderTarget      Access = 1 << 3
	AccessUnorderedAccess   Access = 1 << 4
	AccessDepthStencilWrite Access = 1 << 5
	AccessDepthStencilRead  Access = 1 << 6
	AccessShaderResource    Access = 1 << 7
	AccessIndirectArgument  Access = 1 << 9
	AccessCopyDest          Access = 1 << 11
	AccessCopySource        Access = 1 << 12
)

// Layout is a texture's physical memory layout, meaningful only for
// textures (buffers carry Layout zero/Undefined on both sides of a
// transition). Trimmed from original_source's ERHIBarrierLayout to the
// subset this module's legacy State enum can actually produce; the
// queue-specific Direct/ComputeQueue* layout variants aren't reachable
// since queue.Kind never exposes a "Direct" queue (spec.md/REDESIGN
// FLAGS: Graphics/Compute/Copy only).
type Layout uint8

const (
	LayoutUndefined Layout = iota
	LayoutCommon
	LayoutPresent
	LayoutGenericRead
	LayoutRenderTarget
	LayoutUnorderedAccess
	LayoutDepthStencilWrite
	LayoutDepthStencilRead
	LayoutShaderResource
	LayoutCopySource
	LayoutCopyDest
)

// EnhancedDesc is the Enhanced-Barrier alternate encoding of a
// transition, the Go analogue of original_source's RHIEnhancedBarrierDesc
// (D3D12_BARRIER_GROUP-shaped). A backend that advertises
// hal.Capabilities.EnhancedBarriers consumes this instead of the legacy
// before/after State pair.
type EnhancedDesc struct {
	SyncBefore, SyncAfter     Sync
	AccessBefore, AccessAfter Access
	LayoutBefore, LayoutAfter Layout

	Resource    resource.Refcounted
	Subresource uint32
}

// accessLayoutTable maps every legacy State bit this module defines to
// its Enhanced-Barrier (Access, Layout, Sync) triple. Common has no bit
// of its own (it is the zero State), so it has no entry here and is
// handled by resolveEnhanced directly.
var accessLayoutTable = map[State]struct {
	access Access
	layout Layout
	sync   Sync
}{
	VertexBuffer:     {AccessVertexBuffer, LayoutGenericRead, SyncVertexShading},
	IndexBuffer:      {AccessIndexBuffer, LayoutGenericRead, SyncIndexInput},
	ConstantBuffer:   {AccessConstantBuffer, LayoutGenericRead, SyncAll},
	ShaderResource:   {AccessShaderResource, LayoutShaderResource, SyncAll},
	UnorderedAccess:  {AccessUnorderedAccess, LayoutUnorderedAccess, SyncCompute},
	RenderTarget:     {AccessRenderTarget, LayoutRenderTarget, SyncRenderTarget},
	DepthWrite:       {AccessDepthStencilWrite, LayoutDepthStencilWrite, SyncDepthStencil},
	DepthRead:        {AccessDepthStencilRead, LayoutDepthStencilRead, SyncDepthStencil},
	CopySource:       {AccessCopySource, LayoutCopySource, SyncCopy},
	CopyDest:         {AccessCopyDest, LayoutCopyDest, SyncCopy},
	IndirectArgument: {AccessIndirectArgument, LayoutGenericRead, SyncExecuteIndirect},
	Present:          {AccessNone, LayoutPresent, SyncAll},
	ResolveSource:    {AccessCopySource, LayoutCopySource, SyncResolve},
	ResolveDest:      {AccessCopyDest, LayoutCopyDest, SyncResolve},
}

// resolveEnhanced looks up s's Enhanced-Barrier triple. Common (the
// zero State, no bits set) resolves to AccessNone, LayoutCommon and
// SyncAll (ERHIBarrierAccess::Common == NoAccess == 0). A State with no
// table entry (for example a combination of several bits) resolves to
// AccessNone, LayoutUndefined and SyncAll.
func resolveEnhanced(s State) (access Access, layout Layout, sync Sync) {
	if s == Common {
		return AccessNone, LayoutCommon, SyncAll
	}
	if e, ok := accessLayoutTable[s]; ok {
		return e.access, e.layout, e.sync
	}
	return AccessNone, LayoutUndefined, SyncAll
}

// ToEnhancedDesc converts a legacy Transition into its Enhanced-Barrier
// encoding, for a Scope bound to a backend that advertises
// hal.Capabilities.EnhancedBarriers.
func ToEnhancedDesc(t Transition) EnhancedDesc {
	beforeAccess, beforeLayout, beforeSync := resolveEnhanced(t.Before)
	afterAccess, afterLayout, afterSync := resolveEnhanced(t.After)
	return EnhancedDesc{
		SyncBefore:   beforeSync,
		SyncAfter:    afterSync,
		AccessBefore: beforeAccess,
		AccessAfter:  afterAccess,
		LayoutBefore: beforeLayout,
		LayoutAfter:  afterLayout,
		Resource:     t.Resource,
		Subresource:  t.Subresource,
	}
}

// FlushEnhancedBarriers drains the tracker's pending transitions as
// EnhancedDesc values via emit, the Enhanced-Barrier equivalent of
// Scope.FlushBarriers. Callers select this path instead of
// FlushBarriers when hal.Capabilities.EnhancedBarriers is true for the
// bound backend; barrier itself stays decoupled from hal; the caller
// owning both makes that choice.
func (s *Scope) FlushEnhancedBarriers(emit func(EnhancedDesc) error) error {
	for _, t := range s.tracker.PendingBarriers() {
		if !t.NeedsBarrier() {
			continue
		}
		if err := emit(ToEnhancedDesc(t)); err != nil {
			return err
		}
	}
	s.tracker.ClearPending()
	return nil
}
