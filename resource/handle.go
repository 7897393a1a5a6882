package resource

// Refcounted is the interface Handle operates on: anything embedding Base
// and satisfying Destroyer through it.
type Refcounted interface {
	Destroyer
	AddRef() int32
	Release() int32
	Kind() Kind
	ResourceID() ID
}

// Handle is a smart reference to a GPU object, modelled on the original
// RHIRefCountPtr.h (spec.md §4.1, "the handle is a smart reference").
// Construction from a raw pointer calls AddRef; going out of scope (via
// Close) calls Release. Detach/Attach let ownership move between a Handle
// and a raw pointer without touching the refcount, for factory functions
// that hand back an already-ref'd object.
type Handle[T Refcounted] struct {
	ptr T
}

// New wraps ptr, incrementing its refcount. Use this when ptr is already
// owned elsewhere and the Handle is an additional, independent reference.
func New[T Refcounted](ptr T) Handle[T] {
	var zero T
	if any(ptr) != any(zero) {
		ptr.AddRef()
	}
	return Handle[T]{ptr: ptr}
}

// Attach adopts ptr without incrementing its refcount — for factory
// outputs that already hand over a +1 reference (spec.md §4.1, "attach
// adopts a refcount without incrementing").
func Attach[T Refcounted](ptr T) Handle[T] {
	return Handle[T]{ptr: ptr}
}

// Get returns the underlying pointer without affecting the refcount.
func (h Handle[T]) Get() T { return h.ptr }

// IsValid reports whether the handle wraps a non-nil object.
func (h Handle[T]) IsValid() bool {
	var zero T
	return any(h.ptr) != any(zero)
}

// Clone returns a new Handle sharing ownership, incrementing the refcount.
func (h Handle[T]) Clone() Handle[T] {
	if h.IsValid() {
		h.ptr.AddRef()
	}
	return Handle[T]{ptr: h.ptr}
}

// Detach releases ownership without decrementing the refcount, handing the
// caller a raw +1 reference they are now responsible for releasing
// (spec.md §4.1, "detach transfers ownership without refcount change").
func (h *Handle[T]) Detach() T {
	ptr := h.ptr
	var zero T
	h.ptr = zero
	return ptr
}

// Close releases the held reference, if any. A Handle must not be used
// again after Close. Calling Close on an already-empty Handle is a no-op.
func (h *Handle[T]) Close() {
	if h.IsValid() {
		h.ptr.Release()
	}
	var zero T
	h.ptr = zero
}

// Equal reports pointer identity between two handles (spec.md §4.1,
// "Equality is pointer identity").
func (h Handle[T]) Equal(other Handle[T]) bool {
	return any(h.ptr) == any(other.ptr)
}

// Cast attempts a typed downcast: it succeeds iff obj's Kind equals want,
// returning obj re-typed as U. No RTTI is used, matching spec.md §4.1
// ("cast<T>(res) succeeds iff res.resource_kind == T::KIND").
func Cast[U Refcounted](obj Refcounted, want Kind, convert func(Refcounted) U) (U, bool) {
	var zero U
	if obj == nil || obj.Kind() != want {
		return zero, false
	}
	return convert(obj), true
}
