package residency

import "testing"

func TestManagerRegisterTracksUsageAndCount(t *testing.T) {
	m := NewManager(Config{MaxVRAMBytes: 1000})
	r := newFakeResource(100, PriorityNormal)
	m.Register(r)

	if m.CurrentUsage() != 100 {
		t.Fatalf("CurrentUsage() = %d, want 100", m.CurrentUsage())
	}
	if m.ResidentCount() != 1 {
		t.Fatalf("ResidentCount() = %d, want 1", m.ResidentCount())
	}
}

func TestManagerUnregisterReversesUsageAndCount(t *testing.T) {
	m := NewManager(Config{MaxVRAMBytes: 1000})
	r := newFakeResource(100, PriorityNormal)
	m.Register(r)
	m.Unregister(r)

	if m.CurrentUsage() != 0 || m.ResidentCount() != 0 {
		t.Fatalf("expected usage/count back to 0, got usage=%d count=%d", m.CurrentUsage(), m.ResidentCount())
	}
}

func TestManagerMarkUsedUpdatesResourceAndTrackedEntry(t *testing.T) {
	m := NewManager(Config{MaxVRAMBytes: 1000})
	r := newFakeResource(100, PriorityNormal)
	m.Register(r)
	m.BeginFrame(5)
	m.MarkUsed(r, 42)

	if r.lastFrame != 5 || r.lastFence != 42 {
		t.Fatalf("expected resource to observe SetLastUsed(5, 42), got (%d, %d)", r.lastFrame, r.lastFence)
	}
}

// TestManagerPerformEvictionSelectsLRUBelowMaximumPriority traces the
// exact selection: two resources past the unused-frame threshold (one
// Normal, one Maximum priority) and one resource recently used. Only
// the Normal-priority, long-unused resource should be evicted, and the
// Maximum-priority one must survive regardless of how stale it is.
func TestManagerPerformEvictionSelectsLRUBelowMaximumPriority(t *testing.T) {
	m := NewManager(Config{
		MaxVRAMBytes:            1000,
		EvictionThreshold:       0.5,
		EvictionTarget:          0.3,
		UnusedFramesBeforeEvict: 10,
	})

	stale := newFakeResource(400, PriorityNormal)
	pinned := newFakeResource(400, PriorityMaximum)
	fresh := newFakeResource(100, PriorityNormal)

	m.BeginFrame(0)
	m.Register(stale)  // lastUsedFrame = 0
	m.Register(pinned) // lastUsedFrame = 0
	m.Register(fresh)  // lastUsedFrame = 0, refreshed below

	m.BeginFrame(20)
	m.MarkUsed(fresh, 1) // fresh.lastUsedFrame = 20, unused = 0

	// usage = 900/1000 = 0.9 > threshold 0.5: EndFrame must evict.
	if err := m.EndFrame(); err != nil {
		t.Fatal(err)
	}

	if m.CurrentUsage() != 500 {
		t.Fatalf("CurrentUsage() after eviction = %d, want 500 (900 - stale's 400)", m.CurrentUsage())
	}
	if m.EvictedCount() != 1 || m.ResidentCount() != 2 {
		t.Fatalf("EvictedCount()=%d ResidentCount()=%d, want 1 and 2", m.EvictedCount(), m.ResidentCount())
	}
}

func TestManagerPerformEvictionStopsAtTargetReduction(t *testing.T) {
	m := NewManager(Config{
		MaxVRAMBytes:            1000,
		EvictionThreshold:       0.1,
		EvictionTarget:          0.1,
		UnusedFramesBeforeEvict: 1,
	})

	a := newFakeResource(150, PriorityNormal)
	b := newFakeResource(150, PriorityNormal)
	c := newFakeResource(150, PriorityNormal)
	m.BeginFrame(0)
	m.Register(a)
	m.Register(b)
	m.Register(c)

	m.BeginFrame(5)
	// usage=450/1000=0.45 > target 0.1: targetReduction = 450 - 100 = 350.
	// a(150)+b(150)=300 < 350, so c must also be evicted to reach >=350.
	if err := m.PerformEviction(); err != nil {
		t.Fatal(err)
	}
	if m.EvictedCount() != 3 {
		t.Fatalf("EvictedCount() = %d, want 3 (all three needed to reach the target reduction)", m.EvictedCount())
	}
}

func TestManagerEnsureResidentTransitionsEvictedBackToResident(t *testing.T) {
	m := NewManager(Config{MaxVRAMBytes: 1000})
	r := newFakeResource(100, PriorityLow)
	m.Register(r)

	var evicted bool
	m.Evict = func(Resource) error { evicted = true; return nil }

	m.BeginFrame(100)
	if err := m.PerformEviction(); err != nil {
		t.Fatal(err)
	}
	if !evicted || m.EvictedCount() != 1 {
		t.Fatalf("expected PerformEviction to evict r, evicted=%v count=%d", evicted, m.EvictedCount())
	}

	var madeResident bool
	m.MakeResident = func(Resource) error { madeResident = true; return nil }
	if err := m.EnsureResident([]Resource{r}); err != nil {
		t.Fatal(err)
	}
	if !madeResident || m.ResidentCount() != 1 || m.EvictedCount() != 0 {
		t.Fatalf("expected EnsureResident to restore r, madeResident=%v resident=%d evicted=%d", madeResident, m.ResidentCount(), m.EvictedCount())
	}
}

func TestManagerEndFrameSkipsEvictionBelowThreshold(t *testing.T) {
	m := NewManager(Config{MaxVRAMBytes: 1000, EvictionThreshold: 0.9, UnusedFramesBeforeEvict: 0})
	r := newFakeResource(100, PriorityNormal)
	m.BeginFrame(0)
	m.Register(r)
	m.BeginFrame(50)

	if err := m.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if m.EvictedCount() != 0 {
		t.Fatalf("expected no eviction at usage ratio 0.1 < threshold 0.9, got EvictedCount()=%d", m.EvictedCount())
	}
}
