package barrier

import "github.com/gogpu/rhi/resource"

// AllSubresources is the sentinel meaning "every subresource", mirroring
// queue.AllSubresources without importing queue into this package's
// tracking core.
const AllSubresources = ^uint32(0)

// Transition is a single demanded-but-not-yet-emitted barrier: resource R
// needs to move from Before to After, on the given subresource (or every
// subresource, when Subresource == AllSubresources).
type Transition struct {
	Resource    resource.Refcounted
	Subresource uint32
	Before      State
	After       State
}

// NeedsBarrier reports whether this transition is non-trivial, i.e. the
// validator in state.go actually requires hardware work.
func (t Transition) NeedsBarrier() bool {
	return NeedsTransition(t.Before, t.After)
}

type trackedEntry struct {
	res     resource.Refcounted
	states  *StateMap
	initial State // the state this resource was first assumed to enter in, within this context
}

// Tracker is the resource state tracker from spec.md §4.6: local to one
// recording context, it remembers each tracked resource's current state
// map and accumulates pending barriers as commands declare what state they
// need.
type Tracker struct {
	maxTracked int // 0 means unbounded
	entries    map[resource.ID]*trackedEntry
	order      []resource.ID // first-seen order, for GlobalStateManager.ResolveBarriers

	pending []Transition
}

// NewTracker creates an empty tracker. maxTracked of 0 means unbounded.
func NewTracker(maxTracked int) *Tracker {
	return &Tracker{
		maxTracked: maxTracked,
		entries:    make(map[resource.ID]*trackedEntry),
	}
}

// IsTracked reports whether res already has an entry.
func (t *Tracker) IsTracked(res resource.Refcounted) bool {
	_, ok := t.entries[res.ResourceID()]
	return ok
}

// InitialState returns the state a tracked resource was assumed to be in
// the first time this context touched it, and whether it is tracked at
// all. GlobalStateManager.ResolveBarriers uses this to compute prelude
// barriers against whatever state the previous context actually left the
// resource in.
func (t *Tracker) InitialState(res resource.Refcounted) (State, bool) {
	e, ok := t.entries[res.ResourceID()]
	if !ok {
		return Common, false
	}
	return e.initial, true
}

// RequireState is the tracker's core operation (spec.md §4.6): it compares
// the resource's current state against required, appends a pending
// transition if they differ (accounting for read-only combining), and
// updates the tracked state map. Resources seen here for the first time
// are implicitly tracked with initial state required — no barrier is
// needed for a context's first touch of a resource.
func (t *Tracker) RequireState(res resource.Refcounted, subresourceCount uint32, subresource uint32, required State) error {
	id := res.ResourceID()
	entry, ok := t.entries[id]
	if !ok {
		if t.maxTracked > 0 && len(t.entries) >= t.maxTracked {
			return ErrTrackerFull
		}
		entry = &trackedEntry{res: res, states: NewStateMap(subresourceCount, required), initial: required}
		t.entries[id] = entry
		t.order = append(t.order, id)
		return nil
	}

	if subresource != AllSubresources && subresource >= entry.states.Count() {
		return &SubresourceRangeError{Index: subresource, Count: entry.states.Count()}
	}

	if subresource == AllSubresources {
		if entry.states.IsUniform() {
			return t.requireOne(res, AllSubresources, entry.states.GetUniform(), required, entry.states.SetAll)
		}
		for i := uint32(0); i < entry.states.Count(); i++ {
			i := i
			cur := entry.states.Get(i)
			if err := t.requireOne(res, i, cur, required, func(s State) { entry.states.Set(i, s) }); err != nil {
				return err
			}
		}
		return nil
	}

	cur := entry.states.Get(subresource)
	return t.requireOne(res, subresource, cur, required, func(s State) { entry.states.Set(subresource, s) })
}

func (t *Tracker) requireOne(res resource.Refcounted, subresource uint32, current, required State, write func(State)) error {
	if !NeedsTransition(current, required) {
		return nil
	}
	t.pending = append(t.pending, Transition{Resource: res, Subresource: subresource, Before: current, After: required})
	write(required)
	return nil
}

// PendingBarriers returns the transitions accumulated since the last
// ClearPending.
func (t *Tracker) PendingBarriers() []Transition { return t.pending }

// ClearPending empties the pending-transition list.
func (t *Tracker) ClearPending() { t.pending = t.pending[:0] }

// CurrentState returns a tracked resource's current representative state
// (spec.md's get_uniform semantics when non-uniform: any one element).
func (t *Tracker) CurrentState(res resource.Refcounted) (State, bool) {
	e, ok := t.entries[res.ResourceID()]
	if !ok {
		return Common, false
	}
	return e.states.GetUniform(), true
}

// StateMap returns the live per-subresource state map tracked for res, for
// callers (GlobalStateManager.CommitLocalStates) that need full
// subresource fidelity rather than CurrentState's collapsed
// representative value. The returned map must be treated as read-only —
// it is the tracker's own, not a copy.
func (t *Tracker) StateMap(res resource.Refcounted) (*StateMap, bool) {
	e, ok := t.entries[res.ResourceID()]
	if !ok {
		return nil, false
	}
	return e.states, true
}

// TrackedResources returns every resource this tracker has seen, in
// first-seen order.
func (t *Tracker) TrackedResources() []resource.Refcounted {
	out := make([]resource.Refcounted, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.entries[id].res)
	}
	return out
}
