package resource

import "sync/atomic"

// ID is a process-lifetime-unique resource identifier, assigned at
// construction (spec.md §3: "ResourceId is unique for the process
// lifetime"). Unlike the teacher's core.ID[T] (an index+epoch pair into a
// generational array), resources here are addressed by handle/pointer, so
// a plain monotonic counter is the right model — see SPEC_FULL.md §4,
// C1/C2.
type ID uint64

var nextID atomic.Uint64

// NewID allocates the next process-wide resource ID. IDs start at 1 so
// that the zero value of ID is always invalid, mirroring the teacher's
// epoch-starts-at-1 convention in core/identity.go.
func NewID() ID {
	return ID(nextID.Add(1))
}

// IsValid reports whether the ID was produced by NewID.
func (id ID) IsValid() bool {
	return id != 0
}
