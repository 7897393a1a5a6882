package barrier

import "testing"

func TestStateMapUniformFastPath(t *testing.T) {
	m := NewStateMap(4, ShaderResource)
	if !m.IsUniform() {
		t.Fatal("expected new map to be uniform")
	}
	for i := uint32(0); i < 4; i++ {
		if m.Get(i) != ShaderResource {
			t.Fatalf("Get(%d) = %v, want ShaderResource", i, m.Get(i))
		}
	}
}

func TestStateMapExpandsOnDivergence(t *testing.T) {
	m := NewStateMap(4, ShaderResource)
	m.Set(2, RenderTarget)
	if m.IsUniform() {
		t.Fatal("expected map to expand once a subresource diverges")
	}
	if m.Get(2) != RenderTarget {
		t.Fatalf("Get(2) = %v, want RenderTarget", m.Get(2))
	}
	if m.Get(0) != ShaderResource {
		t.Fatalf("Get(0) = %v, want ShaderResource (unaffected)", m.Get(0))
	}
}

func TestStateMapCollapsesBackToUniform(t *testing.T) {
	m := NewStateMap(2, ShaderResource)
	m.Set(0, RenderTarget)
	if m.IsUniform() {
		t.Fatal("expected divergence")
	}
	m.Set(1, RenderTarget)
	if !m.IsUniform() {
		t.Fatal("expected map to collapse once every subresource agrees again")
	}
	if m.GetUniform() != RenderTarget {
		t.Fatalf("GetUniform() = %v, want RenderTarget", m.GetUniform())
	}
}

func TestStateMapSetAllCollapses(t *testing.T) {
	m := NewStateMap(4, ShaderResource)
	m.Set(1, RenderTarget)
	m.SetAll(CopyDest)
	if !m.IsUniform() || m.GetUniform() != CopyDest {
		t.Fatal("SetAll must always collapse to a uniform state")
	}
}

func TestReadOnlyCombiningNeedsNoTransition(t *testing.T) {
	current := ShaderResource | CopySource
	if NeedsTransition(current, ShaderResource) {
		t.Fatal("a read-only state already contained in current should not need a transition")
	}
	if NeedsTransition(current, CopySource) {
		t.Fatal("CopySource is contained in current and read-only; should not need a transition")
	}
}

func TestWriteStatesRequireExactMatch(t *testing.T) {
	if !NeedsTransition(UnorderedAccess, RenderTarget) {
		t.Fatal("distinct write states must always require a transition")
	}
	if NeedsTransition(RenderTarget, RenderTarget) {
		t.Fatal("identical states never need a transition")
	}
}
