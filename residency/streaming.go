package residency

import "math"

// RequestStreamFunc issues the backend/filesystem streaming request
// that moves a resource toward its requested level. Backend-dependent,
// so it's a caller-supplied hook like upload.MipGenerationFunc.
type RequestStreamFunc func(r StreamingResource, level StreamingLevel)

type streamingEntry struct {
	resource StreamingResource
	distance float32
	priority float32
}

// StreamingManager tracks streamable resources by camera distance and
// (re)issues streaming requests for any whose current level doesn't
// match its requested level. The distance-based priority is recorded
// per entry; it does not change any resource's requested level. Streaming is
// advisory: it never blocks rendering (spec.md §4.13,
// original_source/RHIResidency.cpp's RHITextureStreamingManager).
type StreamingManager struct {
	residency *Manager
	budget    uint64
	entries   []streamingEntry

	Request RequestStreamFunc
}

// NewStreamingManager creates a StreamingManager backed by residency,
// with an initial streaming budget in bytes.
func NewStreamingManager(residency *Manager, budget uint64) *StreamingManager {
	return &StreamingManager{residency: residency, budget: budget}
}

// BeginFrame is a pass-through hook for a future per-frame priority
// reset; there is nothing to do yet.
func (m *StreamingManager) BeginFrame() {}

// EndFrame scans every tracked entry and (re)issues a streaming request
// for any whose current level hasn't caught up to its requested level.
func (m *StreamingManager) EndFrame() {
	m.ProcessStreaming()
}

// Register starts tracking r with zero distance/priority.
func (m *StreamingManager) Register(r StreamingResource) {
	if r == nil {
		return
	}
	m.entries = append(m.entries, streamingEntry{resource: r})
}

// Unregister stops tracking r.
func (m *StreamingManager) Unregister(r StreamingResource) {
	if r == nil {
		return
	}
	for i := range m.entries {
		if m.entries[i].resource == r {
			last := len(m.entries) - 1
			m.entries[i] = m.entries[last]
			m.entries = m.entries[:last]
			return
		}
	}
}

// UpdateResourceDistance records r's distance from the camera and
// recomputes its streaming priority: 1/distance, or +Inf at distance 0
// (closest possible, highest priority).
func (m *StreamingManager) UpdateResourceDistance(r StreamingResource, distance float32) {
	for i := range m.entries {
		if m.entries[i].resource == r {
			m.entries[i].distance = distance
			if distance > 0 {
				m.entries[i].priority = 1 / distance
			} else {
				m.entries[i].priority = float32(math.Inf(1))
			}
			return
		}
	}
}

// SetStreamingBudget updates the streaming byte budget.
func (m *StreamingManager) SetStreamingBudget(budget uint64) { m.budget = budget }

// ForceLoad requests r be streamed directly to level, bypassing
// distance-based priority.
func (m *StreamingManager) ForceLoad(r StreamingResource, level StreamingLevel) {
	if r == nil {
		return
	}
	r.RequestStreamingLevel(level)
}

// ProcessStreaming (re)issues a streaming request, via Request, for
// every tracked resource whose current streaming level doesn't match
// its requested level and whose IsStreamingComplete reports false.
func (m *StreamingManager) ProcessStreaming() {
	for i := range m.entries {
		r := m.entries[i].resource
		if r == nil {
			continue
		}
		current := r.CurrentStreamingLevel()
		requested := r.RequestedStreamingLevel()
		if current != requested && !r.IsStreamingComplete() {
			if m.Request != nil {
				m.Request(r, requested)
			}
		}
	}
}
