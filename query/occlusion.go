package query

import "github.com/gogpu/rhi/queue"

// invalidQueryIndex is the sentinel QueryID.index value for "no query".
const invalidQueryIndex = ^uint32(0)

// QueryID identifies a query issued against an OcclusionManager within
// the current frame.
type QueryID struct{ index uint32 }

// IsValid reports whether id names an actual query.
func (id QueryID) IsValid() bool { return id.index != invalidQueryIndex }

// InvalidQueryID returns the sentinel "no query" QueryID.
func InvalidQueryID() QueryID { return QueryID{index: invalidQueryIndex} }

type pendingOcclusionQuery struct {
	allocation Allocation
}

// OcclusionManager wraps an Allocator built for Occlusion or
// BinaryOcclusion queries, tracking which heap/index each BeginQuery
// call used so the matching EndQuery can be issued against the right
// query, and caching resolved results for lookup by QueryID
// (spec.md §4.12, original_source/RHIOcclusion.h's
// RHIOcclusionQueryManager).
type OcclusionManager struct {
	allocator  *Allocator
	useBinary  bool
	maxQueries uint32

	pending []pendingOcclusionQuery
	results []OcclusionResult
}

// NewOcclusionManager creates an OcclusionManager over allocator, which
// must have been built with Occlusion or BinaryOcclusion query type.
func NewOcclusionManager(allocator *Allocator, maxQueries uint32, useBinaryOcclusion bool) *OcclusionManager {
	return &OcclusionManager{
		allocator:  allocator,
		useBinary:  useBinaryOcclusion,
		maxQueries: maxQueries,
		results:    make([]OcclusionResult, maxQueries),
	}
}

// BeginFrame starts a new frame of occlusion queries.
func (m *OcclusionManager) BeginFrame() {
	m.allocator.BeginFrame(0)
	m.pending = m.pending[:0]
}

// EndFrame resolves the frame's queries. The previous frame's results
// remain cached until the corresponding resolve's fence completes; call
// AreResultsReady before trusting GetResult/IsVisible for a given
// QueryID issued this frame.
func (m *OcclusionManager) EndFrame(ctx queue.BaseContext) error {
	return m.allocator.EndFrame(ctx)
}

// BeginQuery allocates and starts a single occlusion query, returning
// its QueryID, or an invalid QueryID if the frame's query budget is
// exhausted.
func (m *OcclusionManager) BeginQuery(ctx queue.BaseContext) QueryID {
	a := m.allocator.Allocate(1)
	if !a.IsValid() {
		return InvalidQueryID()
	}
	ctx.BeginQuery(a.Heap, a.StartIndex)
	id := QueryID{index: uint32(len(m.pending))}
	m.pending = append(m.pending, pendingOcclusionQuery{allocation: a})
	return id
}

// EndQuery ends the query started by the matching BeginQuery call.
func (m *OcclusionManager) EndQuery(ctx queue.BaseContext, id QueryID) {
	if !id.IsValid() || int(id.index) >= len(m.pending) {
		return
	}
	a := m.pending[id.index].allocation
	ctx.EndQuery(a.Heap, a.StartIndex)
}

// AreResultsReady reports whether the current frame's resolve has
// completed.
func (m *OcclusionManager) AreResultsReady() bool {
	return m.allocator.AreResultsReady(0)
}

// GetResult returns the cached result for id, or the zero (invalid)
// result if id is out of range.
func (m *OcclusionManager) GetResult(id QueryID) OcclusionResult {
	if !id.IsValid() || int(id.index) >= len(m.results) {
		return OcclusionResult{}
	}
	return m.results[id.index]
}

// SetResult records a resolved result for id, read back from the
// allocator's result buffer by the caller (the byte layout of which is
// backend-specific: one uint64 sample count per query for Occlusion,
// and a nonzero/zero uint64 for BinaryOcclusion).
func (m *OcclusionManager) SetResult(id QueryID, result OcclusionResult) {
	if !id.IsValid() || int(id.index) >= len(m.results) {
		return
	}
	m.results[id.index] = result
}

// IsVisible reports whether id's cached result shows any samples
// passed.
func (m *OcclusionManager) IsVisible(id QueryID) bool {
	return m.GetResult(id).IsVisible()
}

// UsedQueryCount returns how many queries were issued this frame.
func (m *OcclusionManager) UsedQueryCount() uint32 { return uint32(len(m.pending)) }

// MaxQueryCount returns the configured query budget.
func (m *OcclusionManager) MaxQueryCount() uint32 { return m.maxQueries }
