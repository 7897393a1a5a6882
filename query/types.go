package query

// Type names the kind of GPU query a heap is built for.
type Type uint8

const (
	Occlusion Type = iota
	BinaryOcclusion
	Timestamp
	PipelineStatistics
	StreamOutputStatistics
	StreamOutputOverflow
	Predication
)

func (t Type) String() string {
	switch t {
	case Occlusion:
		return "Occlusion"
	case BinaryOcclusion:
		return "BinaryOcclusion"
	case Timestamp:
		return "Timestamp"
	case PipelineStatistics:
		return "PipelineStatistics"
	case StreamOutputStatistics:
		return "StreamOutputStatistics"
	case StreamOutputOverflow:
		return "StreamOutputOverflow"
	case Predication:
		return "Predication"
	default:
		return "Unknown"
	}
}

// StatisticsFlags selects which PipelineStatisticsResult counters a
// PipelineStatistics query heap records.
type StatisticsFlags uint32

const (
	StatsNone StatisticsFlags = 0

	StatsIAVertices    StatisticsFlags = 1 << 0
	StatsIAPrimitives  StatisticsFlags = 1 << 1
	StatsVSInvocations StatisticsFlags = 1 << 2
	StatsGSInvocations StatisticsFlags = 1 << 3
	StatsGSPrimitives  StatisticsFlags = 1 << 4
	StatsCInvocations  StatisticsFlags = 1 << 5
	StatsCPrimitives   StatisticsFlags = 1 << 6
	StatsPSInvocations StatisticsFlags = 1 << 7
	StatsHSInvocations StatisticsFlags = 1 << 8
	StatsDSInvocations StatisticsFlags = 1 << 9
	StatsCSInvocations StatisticsFlags = 1 << 10
	StatsASInvocations StatisticsFlags = 1 << 11
	StatsMSInvocations StatisticsFlags = 1 << 12

	StatsAll StatisticsFlags = 0x1FFF
)

// HeapDesc describes a query heap: its type, capacity, and (for
// PipelineStatistics heaps) which counters are recorded.
type HeapDesc struct {
	Type            Type
	Count           uint32
	StatisticsFlags StatisticsFlags
	NodeMask        uint32
}

// TimestampHeapDesc builds a Timestamp heap descriptor.
func TimestampHeapDesc(count uint32) HeapDesc {
	return HeapDesc{Type: Timestamp, Count: count}
}

// OcclusionHeapDesc builds an Occlusion heap descriptor.
func OcclusionHeapDesc(count uint32) HeapDesc {
	return HeapDesc{Type: Occlusion, Count: count}
}

// BinaryOcclusionHeapDesc builds a BinaryOcclusion heap descriptor.
func BinaryOcclusionHeapDesc(count uint32) HeapDesc {
	return HeapDesc{Type: BinaryOcclusion, Count: count}
}

// PipelineStatisticsHeapDesc builds a PipelineStatistics heap descriptor,
// defaulting to every counter.
func PipelineStatisticsHeapDesc(count uint32, flags StatisticsFlags) HeapDesc {
	if flags == StatsNone {
		flags = StatsAll
	}
	return HeapDesc{Type: PipelineStatistics, Count: count, StatisticsFlags: flags}
}
