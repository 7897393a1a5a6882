package residency

import "github.com/gogpu/rhi/resource"

// Status is whether a tracked resource currently occupies VRAM.
type Status uint8

const (
	Resident Status = iota
	Evicted
)

// Priority ranks a resource's importance to the eviction selector.
// Maximum-priority resources are never selected for eviction regardless
// of how long they've gone unused.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityMaximum
)

// Resource is a GPU object the residency manager tracks: its size, the
// priority that guards it from eviction, and a sink for the manager to
// record when it was last used.
type Resource interface {
	resource.Refcounted

	Size() uint64
	ResidencyPriority() Priority
	SetLastUsed(frame uint64, fenceValue uint64)
}

// StreamingLevel is a discrete level of detail a StreamingResource can
// be loaded at, ordered from coarsest (Lowest) to full resolution
// (Full). The exact number of intermediate levels and what each one
// means (mip bias, tile count, …) is a streaming-resource concern; this
// package only compares levels for equality and orders ForceLoad
// requests.
type StreamingLevel uint8

const (
	StreamingLowest StreamingLevel = iota
	StreamingLow
	StreamingMedium
	StreamingHigh
	StreamingFull
)

// StreamingResource is a streamable GPU object (typically a texture)
// the streaming manager can query for its current/requested detail
// level and ask to change.
type StreamingResource interface {
	resource.Refcounted

	CurrentStreamingLevel() StreamingLevel
	RequestedStreamingLevel() StreamingLevel
	RequestStreamingLevel(level StreamingLevel)
	IsStreamingComplete() bool
}
