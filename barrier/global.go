package barrier

import (
	"sync"

	"github.com/gogpu/rhi/resource"
)

type globalEntry struct {
	res    resource.Refcounted
	states *StateMap
}

// GlobalStateManager records the last-known state of every tracked
// resource across command contexts (spec.md §4.8). A single mutex guards
// it; contention is negligible since updates only happen at Finalize, not
// per-operation.
type GlobalStateManager struct {
	mu      sync.Mutex
	entries map[resource.ID]*globalEntry
}

// NewGlobalStateManager creates an empty manager.
func NewGlobalStateManager() *GlobalStateManager {
	return &GlobalStateManager{entries: make(map[resource.ID]*globalEntry)}
}

// Register installs a fresh entry for res with a new subresource state
// map. A resource observed here for the first time via an implicit path
// (ResolveBarriers encountering an untracked resource) is registered in
// Common state — this is intended behavior, not a bug: any resource a
// context assumes starts in Common is, by definition, one the manager has
// never seen signaled into any other state (Open Question #1).
func (g *GlobalStateManager) Register(res resource.Refcounted, initial State, subresourceCount uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries[res.ResourceID()] = &globalEntry{res: res, states: NewStateMap(subresourceCount, initial)}
}

// Unregister removes res's entry, e.g. on resource destruction.
func (g *GlobalStateManager) Unregister(res resource.Refcounted) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, res.ResourceID())
}

// GlobalState reads res's current global state for subresource (or its
// representative uniform state when subresource is AllSubresources).
func (g *GlobalStateManager) GlobalState(res resource.Refcounted, subresource uint32) (State, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[res.ResourceID()]
	if !ok {
		return Common, false
	}
	if subresource == AllSubresources {
		return e.states.GetUniform(), true
	}
	return e.states.Get(subresource), true
}

// ResolveBarriers computes the prelude barriers a local tracker needs: for
// every resource the tracker first saw (its initial assumed state), it
// compares against the corresponding global state and emits a transition
// wherever they differ, per subresource. A resource the global manager has
// never registered is implicitly registered in Common state first (Open
// Question #1), so its prelude barrier is computed the same way as any
// other.
//
// This is a per-subresource diff rather than a whole-resource union: a
// resource currently non-uniform in the global map may need a different
// prelude on each subresource, and collapsing to a single union transition
// would either over-barrier subresources that already match or silently
// miss ones that don't (Open Question #4). Contiguous subresource runs
// that share both the global and local initial state are merged into a
// single transition to avoid cost proportional to mip count on uniform
// resources.
func (g *GlobalStateManager) ResolveBarriers(local *Tracker, max int) []Transition {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []Transition
	for _, res := range local.TrackedResources() {
		if max > 0 && len(out) >= max {
			break
		}
		initial, ok := local.InitialState(res)
		if !ok {
			continue
		}

		entry, known := g.entries[res.ResourceID()]
		if !known {
			entry = &globalEntry{res: res, states: NewStateMap(1, Common)}
			g.entries[res.ResourceID()] = entry
		}

		out = append(out, g.resolveOneLocked(entry, initial, max-len(out))...)
	}
	return out
}

// resolveOneLocked diffs entry's per-subresource global state against the
// single initial state the local tracker assumed, run-length compressing
// contiguous subresources that need the identical transition. Must be
// called with g.mu held.
func (g *GlobalStateManager) resolveOneLocked(entry *globalEntry, localInitial State, budget int) []Transition {
	if entry.states.IsUniform() {
		cur := entry.states.GetUniform()
		if !NeedsTransition(cur, localInitial) {
			return nil
		}
		return []Transition{{Resource: entry.res, Subresource: AllSubresources, Before: cur, After: localInitial}}
	}

	var out []Transition
	count := entry.states.Count()
	var runStart uint32
	runActive := false
	var runBefore State

	// flush emits one transition per contiguous run of subresources that
	// share the same before-state and both need the same after-state,
	// tagged on the run's first subresource index — run-length compression
	// so a uniform-except-one-mip resource costs O(1) prelude barriers
	// rather than O(mip count).
	flush := func() {
		if runActive && (budget <= 0 || len(out) < budget) {
			out = append(out, Transition{Resource: entry.res, Subresource: runStart, Before: runBefore, After: localInitial})
		}
		runActive = false
	}

	for i := uint32(0); i < count; i++ {
		cur := entry.states.Get(i)
		needs := NeedsTransition(cur, localInitial)
		if needs && runActive && cur == runBefore {
			continue // extend the run
		}
		flush()
		if needs {
			runActive = true
			runBefore = cur
			runStart = i
		}
	}
	flush()
	return out
}

// CommitLocalStates overwrites the global state of every resource local
// tracked with its final local state (spec.md §4.8's commit_local_states).
func (g *GlobalStateManager) CommitLocalStates(local *Tracker) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, res := range local.TrackedResources() {
		localMap, ok := local.StateMap(res)
		if !ok {
			continue
		}
		entry, known := g.entries[res.ResourceID()]
		if !known {
			entry = &globalEntry{res: res, states: NewStateMap(localMap.Count(), localMap.GetUniform())}
			g.entries[res.ResourceID()] = entry
		}
		if localMap.IsUniform() {
			entry.states.SetAll(localMap.GetUniform())
			continue
		}
		for i := uint32(0); i < localMap.Count(); i++ {
			entry.states.Set(i, localMap.Get(i))
		}
	}
}
