package resource

import (
	"sync"
	"sync/atomic"
)

// Destroyer is implemented by the concrete per-kind data a Base is embedded
// in. ReleaseGPU is invoked exactly once, when the refcount reaches zero
// (either immediately or after a deferred delete's fence has completed).
type Destroyer interface {
	// ReleaseGPU frees the backend-level state behind this resource.
	// Called at most once, with the refcount already at zero.
	ReleaseGPU()
}

// Base is the intrusive refcount base every GPU object embeds (spec.md
// §4.1). It carries the resource-kind tag, process-unique ID, a
// lock-protected debug name, an atomic refcount starting at 1, and a
// pending-delete flag.
//
// Base itself does not know how to free the concrete resource: Release
// calls the owner's ReleaseGPU exactly once when the count reaches zero,
// unless the resource has been marked for deferred delete, in which case
// release is handed to a DeferredDeleteQueue instead.
type Base struct {
	kind Kind
	id   ID

	nameMu sync.RWMutex
	name   string

	refcount atomic.Int32
	pending  atomic.Bool

	deferred   *DeferredDeleteQueue
	deferredAt SyncValue
	owner      Destroyer
}

// SyncValue is the (fence, value) pair a deferred delete waits on before
// actually freeing the resource. It mirrors gpusync.SyncPoint's shape
// without importing gpusync, to keep resource free of a dependency on the
// sync fabric built on top of it.
type SyncValue struct {
	Fence Waitable
	Value uint64
}

// Waitable is the minimal fence surface the deferred-delete queue needs:
// a single monotonic completed-value query. gpusync.Fence satisfies it.
type Waitable interface {
	CompletedValue() uint64
}

// Init prepares a Base in place. owner.ReleaseGPU is the hook invoked when
// the refcount reaches zero; it is typically the same struct Base is
// embedded in (a self-reference set up by the constructing factory).
// The refcount starts at 1, per spec.md's lifecycle description
// ("constructed with refcount=1 by a factory on a Device").
func (b *Base) Init(kind Kind, owner Destroyer) {
	b.kind = kind
	b.id = NewID()
	b.owner = owner
	b.refcount.Store(1)
}

// Kind returns the resource-kind tag.
func (b *Base) Kind() Kind { return b.kind }

// ResourceID returns the process-unique identifier assigned at construction.
func (b *Base) ResourceID() ID { return b.id }

// DebugName returns the current debug name. Safe for concurrent use
// alongside SetDebugName; reads never observe a torn/partial write
// (spec.md §3: "debug name is readable under concurrent renames without
// tearing").
func (b *Base) DebugName() string {
	b.nameMu.RLock()
	defer b.nameMu.RUnlock()
	return b.name
}

// SetDebugName updates the debug name under its own lock, independent of
// the refcount and pending-delete state.
func (b *Base) SetDebugName(name string) {
	b.nameMu.Lock()
	defer b.nameMu.Unlock()
	b.name = name
}

// Refcount returns the current reference count. Intended for diagnostics
// and tests; racy against concurrent AddRef/Release by construction (it is
// a snapshot), which is acceptable since no caller may act on it to decide
// correctness.
func (b *Base) Refcount() int32 {
	return b.refcount.Load()
}

// IsPendingDelete reports whether the resource has been marked for
// deferred delete.
func (b *Base) IsPendingDelete() bool {
	return b.pending.Load()
}

// MarkForDeferredDelete arranges for the next Release that brings the
// refcount to zero to hand the resource to queue instead of calling
// ReleaseGPU directly. The resource is retained until at retires (spec.md
// §4.1: "hands the object to the device's deferred-delete queue with the
// current frame fence").
func (b *Base) MarkForDeferredDelete(queue *DeferredDeleteQueue, at SyncValue) {
	b.deferred = queue
	b.deferredAt = at
	b.pending.Store(true)
}

// AddRef increments the refcount. Relaxed ordering is sufficient: the
// count only needs to be accurate at the point of decrement-to-zero, and
// every new reference is derived from an existing live one (spec.md §5,
// "relaxed increment and acquire-release decrement").
func (b *Base) AddRef() int32 {
	return b.refcount.Add(1)
}

// Release decrements the refcount. When it reaches zero, the resource is
// destroyed exactly once: immediately via owner.ReleaseGPU, or — if
// MarkForDeferredDelete was called first — by handing it to the
// DeferredDeleteQueue keyed on the recorded sync value.
//
// Release on an already-zero resource is undefined behavior per spec.md
// §4.1 ("the caller has violated the refcount contract"); Base does not
// attempt to detect it beyond what the atomic decrement naturally
// surfaces (a negative count), which callers may assert on in debug
// builds via Refcount.
func (b *Base) Release() int32 {
	n := b.refcount.Add(-1)
	if n == 0 {
		if b.deferred != nil {
			b.deferred.Enqueue(b.owner, b.deferredAt)
			return n
		}
		b.owner.ReleaseGPU()
	}
	return n
}
