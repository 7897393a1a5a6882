package platform

import (
	"context"
	"testing"
)

func TestTLSAllocatorWithValueAndValue(t *testing.T) {
	tls := NewTLS()
	slot := tls.Alloc()

	ctx := tls.WithValue(context.Background(), slot, "frame-context")
	if got := tls.Value(ctx, slot); got != "frame-context" {
		t.Fatalf("Value() = %v, want %q", got, "frame-context")
	}
}

func TestTLSAllocatorDistinctSlotsDoNotCollide(t *testing.T) {
	tls := NewTLS()
	a := tls.Alloc()
	b := tls.Alloc()
	if a == b {
		t.Fatal("expected two Alloc calls to return distinct slots")
	}

	ctx := tls.WithValue(context.Background(), a, "a-value")
	ctx = tls.WithValue(ctx, b, "b-value")

	if got := tls.Value(ctx, a); got != "a-value" {
		t.Fatalf("Value(a) = %v, want a-value", got)
	}
	if got := tls.Value(ctx, b); got != "b-value" {
		t.Fatalf("Value(b) = %v, want b-value", got)
	}
}

func TestTLSAllocatorMissingSlotReturnsNil(t *testing.T) {
	tls := NewTLS()
	slot := tls.Alloc()
	if got := tls.Value(context.Background(), slot); got != nil {
		t.Fatalf("Value() on a context with no stored value = %v, want nil", got)
	}
}
