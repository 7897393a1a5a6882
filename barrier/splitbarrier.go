package barrier

import "github.com/gogpu/rhi/resource"

// MaxSplitBarriers bounds SplitBarrierBatch to 16 concurrently open split
// transitions, matching the original RHISplitBarrierBatch::kMaxSplitBarriers.
const MaxSplitBarriers = 16

// SplitBarrier decomposes a transition barrier into a begin and a later
// end, letting the GPU overlap the transition interval with other work.
// Begin records the transition's parameters; End replays them and must use
// the exact same resource/before/after — a mismatch is detected rather
// than silently accepted (spec.md property P9).
type SplitBarrier struct {
	active bool
	t      Transition
}

// Begin opens the split barrier with t's parameters.
func (s *SplitBarrier) Begin(t Transition) {
	s.active = true
	s.t = t
}

// IsActive reports whether Begin has been called without a matching End.
func (s *SplitBarrier) IsActive() bool { return s.active }

// End closes the split barrier, returning the transition it was opened
// with. It is an error to End a split barrier that was never Begin'd, or
// whose resource/before/after does not match what was passed.
func (s *SplitBarrier) End(want Transition) (Transition, error) {
	if !s.active {
		return Transition{}, &SplitBarrierMismatchError{Detail: "end_split with no matching begin_split"}
	}
	if s.t.Resource.ResourceID() != want.Resource.ResourceID() || s.t.Before != want.Before || s.t.After != want.After {
		return Transition{}, &SplitBarrierMismatchError{Detail: "end_split parameters do not match the begin_split that opened it"}
	}
	t := s.t
	s.active = false
	s.t = Transition{}
	return t, nil
}

// SplitBarrierBatch tracks up to MaxSplitBarriers concurrently open split
// barriers, keyed by resource. Exceeding the limit is a fatal
// configuration error.
type SplitBarrierBatch struct {
	active map[resource.ID]*SplitBarrier
}

// NewSplitBarrierBatch creates an empty batch.
func NewSplitBarrierBatch() *SplitBarrierBatch {
	return &SplitBarrierBatch{active: make(map[resource.ID]*SplitBarrier)}
}

// ActiveCount returns the number of currently open splits.
func (b *SplitBarrierBatch) ActiveCount() int { return len(b.active) }

// BeginBarrier opens a new split for t.Resource. Returns a
// ConfigurationError if doing so would exceed MaxSplitBarriers.
func (b *SplitBarrierBatch) BeginBarrier(t Transition) error {
	id := t.Resource.ResourceID()
	if _, exists := b.active[id]; !exists && len(b.active) >= MaxSplitBarriers {
		return &ConfigurationError{What: "split barrier batch", Limit: MaxSplitBarriers}
	}
	sb := &SplitBarrier{}
	sb.Begin(t)
	b.active[id] = sb
	return nil
}

// EndBarrier closes the split previously opened for want.Resource, matching
// its parameters exactly (property P9: every begin is matched by exactly
// one end with the same transition).
func (b *SplitBarrierBatch) EndBarrier(want Transition) (Transition, error) {
	id := want.Resource.ResourceID()
	sb, ok := b.active[id]
	if !ok {
		return Transition{}, &SplitBarrierMismatchError{Detail: "end_split for a resource with no open split"}
	}
	t, err := sb.End(want)
	if err != nil {
		return Transition{}, err
	}
	delete(b.active, id)
	return t, nil
}

// EndAll force-closes every still-open split without validating a match —
// an escape hatch for context teardown/error recovery, not the normal
// path.
func (b *SplitBarrierBatch) EndAll() []Transition {
	out := make([]Transition, 0, len(b.active))
	for _, sb := range b.active {
		out = append(out, sb.t)
	}
	b.active = make(map[resource.ID]*SplitBarrier)
	return out
}
