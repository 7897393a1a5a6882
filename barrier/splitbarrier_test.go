package barrier

import "testing"

func TestSplitBarrierBeginEndMatched(t *testing.T) {
	var sb SplitBarrier
	r := newFakeResource()
	want := Transition{Resource: r, Before: ShaderResource, After: RenderTarget}

	sb.Begin(want)
	if !sb.IsActive() {
		t.Fatal("expected split barrier to be active after Begin")
	}
	got, err := sb.End(want)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("End returned %+v, want %+v", got, want)
	}
	if sb.IsActive() {
		t.Fatal("expected split barrier to be inactive after a matched End")
	}
}

func TestSplitBarrierEndWithoutBeginIsMismatch(t *testing.T) {
	var sb SplitBarrier
	r := newFakeResource()
	if _, err := sb.End(Transition{Resource: r, Before: ShaderResource, After: RenderTarget}); err == nil {
		t.Fatal("expected a mismatch error ending a split barrier that was never begun")
	}
}

func TestSplitBarrierEndWithDifferentParamsIsMismatch(t *testing.T) {
	var sb SplitBarrier
	r := newFakeResource()
	sb.Begin(Transition{Resource: r, Before: ShaderResource, After: RenderTarget})

	_, err := sb.End(Transition{Resource: r, Before: ShaderResource, After: UnorderedAccess})
	if err == nil {
		t.Fatal("expected a mismatch error when After does not match the begin")
	}
	if !sb.IsActive() {
		t.Fatal("a failed End must leave the split barrier active for a later correct End")
	}
}

func TestSplitBarrierBatchMatchedPairsForDistinctResources(t *testing.T) {
	b := NewSplitBarrierBatch()
	r1, r2 := newFakeResource(), newFakeResource()
	t1 := Transition{Resource: r1, Before: ShaderResource, After: RenderTarget}
	t2 := Transition{Resource: r2, Before: CopyDest, After: ShaderResource}

	if err := b.BeginBarrier(t1); err != nil {
		t.Fatal(err)
	}
	if err := b.BeginBarrier(t2); err != nil {
		t.Fatal(err)
	}
	if b.ActiveCount() != 2 {
		t.Fatalf("ActiveCount() = %d, want 2", b.ActiveCount())
	}

	if _, err := b.EndBarrier(t1); err != nil {
		t.Fatal(err)
	}
	if b.ActiveCount() != 1 {
		t.Fatalf("ActiveCount() = %d after ending one split, want 1", b.ActiveCount())
	}
	if _, err := b.EndBarrier(t2); err != nil {
		t.Fatal(err)
	}
	if b.ActiveCount() != 0 {
		t.Fatal("expected all splits closed")
	}
}

func TestSplitBarrierBatchDetectsMismatchedEnd(t *testing.T) {
	b := NewSplitBarrierBatch()
	r := newFakeResource()
	_ = b.BeginBarrier(Transition{Resource: r, Before: ShaderResource, After: RenderTarget})

	_, err := b.EndBarrier(Transition{Resource: r, Before: ShaderResource, After: CopyDest})
	if err == nil {
		t.Fatal("expected a mismatch error for an end_split whose after-state does not match")
	}
	if b.ActiveCount() != 1 {
		t.Fatal("a rejected end_split must not close the still-open split")
	}
}

func TestSplitBarrierBatchEndWithNoOpenSplitIsMismatch(t *testing.T) {
	b := NewSplitBarrierBatch()
	r := newFakeResource()
	if _, err := b.EndBarrier(Transition{Resource: r, Before: ShaderResource, After: RenderTarget}); err == nil {
		t.Fatal("expected a mismatch error ending a split for a resource with nothing open")
	}
}

func TestSplitBarrierBatchOverflowIsConfigurationError(t *testing.T) {
	b := NewSplitBarrierBatch()
	for i := 0; i < MaxSplitBarriers; i++ {
		r := newFakeResource()
		if err := b.BeginBarrier(Transition{Resource: r, Before: ShaderResource, After: RenderTarget}); err != nil {
			t.Fatalf("unexpected error staging split %d: %v", i, err)
		}
	}
	extra := newFakeResource()
	err := b.BeginBarrier(Transition{Resource: extra, Before: ShaderResource, After: RenderTarget})
	if err == nil {
		t.Fatal("expected a ConfigurationError exceeding MaxSplitBarriers")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
}

func TestSplitBarrierBatchEndAllForceClosesWithoutValidation(t *testing.T) {
	b := NewSplitBarrierBatch()
	r1, r2 := newFakeResource(), newFakeResource()
	_ = b.BeginBarrier(Transition{Resource: r1, Before: ShaderResource, After: RenderTarget})
	_ = b.BeginBarrier(Transition{Resource: r2, Before: CopyDest, After: ShaderResource})

	closed := b.EndAll()
	if len(closed) != 2 {
		t.Fatalf("len(closed) = %d, want 2", len(closed))
	}
	if b.ActiveCount() != 0 {
		t.Fatal("expected EndAll to clear every open split")
	}
}
