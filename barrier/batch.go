package barrier

import (
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// MaxBarriers bounds a Batch's staging capacity before it must auto-submit,
// matching the original RHIBarrierBatch::kMaxBarriers.
const MaxBarriers = 64

// Batch is a bounded staging buffer for transition, UAV, and aliasing
// barriers (spec.md §4.6). When its combined entry count reaches
// MaxBarriers and a context is attached, it auto-submits through the
// context's native barrier emission calls and clears itself. Redundant
// transition entries (before == after) are dropped at add time.
type Batch struct {
	ctx queue.ComputeContext // nil is legal: entries just accumulate, and Submit returns a ConfigurationError

	transitions []queue.BarrierTransition
	uav         []resource.Refcounted
	aliasing    []queue.AliasingTransition
}

// NewBatch creates a Batch, optionally bound to ctx for auto-submission.
// Pass nil to accumulate entries without auto-submission; Submit on such
// a batch returns a ConfigurationError, and Clear discards the entries.
func NewBatch(ctx queue.ComputeContext) *Batch {
	return &Batch{ctx: ctx}
}

// Len returns the number of staged entries across all three barrier kinds.
func (b *Batch) Len() int { return len(b.transitions) + len(b.uav) + len(b.aliasing) }

// IsEmpty reports whether the batch currently holds no entries.
func (b *Batch) IsEmpty() bool { return b.Len() == 0 }

// AddTransition stages a transition barrier. A no-op (before == after) is
// dropped without occupying capacity.
func (b *Batch) AddTransition(t queue.BarrierTransition) error {
	if t.Before == t.After {
		return nil
	}
	b.transitions = append(b.transitions, t)
	return b.maybeAutoSubmit()
}

// AddUAV stages a UAV barrier on res.
func (b *Batch) AddUAV(res resource.Refcounted) error {
	b.uav = append(b.uav, res)
	return b.maybeAutoSubmit()
}

// AddAliasing stages an aliasing barrier between before and after.
func (b *Batch) AddAliasing(before, after resource.Refcounted) error {
	b.aliasing = append(b.aliasing, queue.AliasingTransition{Before: before, After: after})
	return b.maybeAutoSubmit()
}

func (b *Batch) maybeAutoSubmit() error {
	if b.ctx == nil || b.Len() < MaxBarriers {
		return nil
	}
	return b.Submit()
}

// Submit emits every staged entry through the attached context's native
// barrier calls, then clears the batch. Returns a ConfigurationError if no
// context is attached — per spec.md §4.6, an overflow with no context to
// drain into is a fatal configuration error.
func (b *Batch) Submit() error {
	if b.ctx == nil {
		return &ConfigurationError{What: "barrier batch submit with no context attached", Limit: MaxBarriers}
	}
	if len(b.transitions) > 0 {
		b.ctx.EmitBarriers(b.transitions)
	}
	if len(b.uav) > 0 {
		b.ctx.UAVBarrier(b.uav)
	}
	if len(b.aliasing) > 0 {
		b.ctx.EmitAliasingBarriers(b.aliasing)
	}
	b.Clear()
	return nil
}

// Clear discards every staged entry without submitting them.
func (b *Batch) Clear() {
	b.transitions = b.transitions[:0]
	b.uav = b.uav[:0]
	b.aliasing = b.aliasing[:0]
}

// toQueueTransition adapts a barrier.Transition (State-typed) into the
// queue package's backend-agnostic BarrierTransition (plain uint32 bit
// patterns), the boundary where the state-tracking core hands off to the
// command-recording surface.
func toQueueTransition(t Transition) queue.BarrierTransition {
	return queue.BarrierTransition{
		Resource:    t.Resource,
		Subresource: t.Subresource,
		Before:      uint32(t.Before),
		After:       uint32(t.After),
	}
}
