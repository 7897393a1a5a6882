package barrier

// StateMap is the per-subresource state representation from spec.md §4.5:
// a uniform single state covering every subresource, or — once a single
// subresource diverges — a dense per-subresource array, collapsing back to
// uniform whenever every entry agrees again.
type StateMap struct {
	count   uint32
	uniform State
	perSub  []State // nil while uniform
}

// NewStateMap creates a map of count subresources, all starting in
// initial.
func NewStateMap(count uint32, initial State) *StateMap {
	return &StateMap{count: count, uniform: initial}
}

// Count returns the number of subresources this map covers.
func (m *StateMap) Count() uint32 { return m.count }

// IsUniform reports whether every subresource currently shares one state.
func (m *StateMap) IsUniform() bool { return m.perSub == nil }

// SetAll collapses the map to a single uniform state, discarding any
// per-subresource divergence.
func (m *StateMap) SetAll(state State) {
	m.uniform = state
	m.perSub = nil
}

// Set writes state to subresource i. If the map is currently uniform and
// state differs from the uniform value, it expands into a per-subresource
// array first. After writing, if every entry has converged back to the
// same value, the map collapses back to uniform.
func (m *StateMap) Set(i uint32, state State) {
	if m.IsUniform() {
		if state == m.uniform {
			return
		}
		m.perSub = make([]State, m.count)
		for j := range m.perSub {
			m.perSub[j] = m.uniform
		}
	}
	m.perSub[i] = state
	m.collapseIfUniform()
}

// Get returns the current state of subresource i, O(1) in either mode.
func (m *StateMap) Get(i uint32) State {
	if m.IsUniform() {
		return m.uniform
	}
	return m.perSub[i]
}

// GetUniform returns the map's single state. Only meaningful when
// IsUniform(); in non-uniform mode it returns a representative state
// (the first element), and callers must check IsUniform() themselves
// before trusting the result as the resource's actual state.
func (m *StateMap) GetUniform() State {
	if m.IsUniform() {
		return m.uniform
	}
	return m.perSub[0]
}

func (m *StateMap) collapseIfUniform() {
	first := m.perSub[0]
	for _, s := range m.perSub[1:] {
		if s != first {
			return
		}
	}
	m.uniform = first
	m.perSub = nil
}
