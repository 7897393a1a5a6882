package query

// OcclusionResult is the resolved result of an Occlusion or
// BinaryOcclusion query.
type OcclusionResult struct {
	SamplesPassed uint64
	Valid         bool
}

// IsVisible reports whether any samples passed the depth/stencil test.
func (r OcclusionResult) IsVisible() bool { return r.Valid && r.SamplesPassed > 0 }

// Visibility returns the fraction of referenceSamples that passed,
// 0 if the result isn't valid yet or referenceSamples is 0.
func (r OcclusionResult) Visibility(referenceSamples uint64) float32 {
	if !r.Valid || referenceSamples == 0 {
		return 0
	}
	return float32(r.SamplesPassed) / float32(referenceSamples)
}

// PipelineStatisticsResult is the resolved result of a PipelineStatistics
// query: one counter per pipeline stage (original_source/RHIQuery.h;
// spec.md §4.12 names the query type but not its counters).
type PipelineStatisticsResult struct {
	IAVertices    uint64
	IAPrimitives  uint64
	VSInvocations uint64
	GSInvocations uint64
	GSPrimitives  uint64
	CInvocations  uint64
	CPrimitives   uint64
	PSInvocations uint64
	HSInvocations uint64
	DSInvocations uint64
	CSInvocations uint64
}

// StreamOutputStatisticsResult is the resolved result of a
// StreamOutputStatistics query.
type StreamOutputStatisticsResult struct {
	PrimitivesWritten       uint64
	PrimitivesStorageNeeded uint64
}

// HasOverflow reports whether more primitives were generated than the
// stream-output buffer could store.
func (r StreamOutputStatisticsResult) HasOverflow() bool {
	return r.PrimitivesStorageNeeded > r.PrimitivesWritten
}
