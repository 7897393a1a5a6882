package residency

// Config is a ResidencyManager's eviction policy (spec.md §4.13).
type Config struct {
	// MaxVRAMBytes is the VRAM budget the manager tracks usage against.
	MaxVRAMBytes uint64

	// EvictionThreshold is the usage/budget ratio, in (0,1), past which
	// EndFrame triggers PerformEviction.
	EvictionThreshold float64

	// EvictionTarget is the usage/budget ratio, in (0,1), PerformEviction
	// tries to bring usage back down to.
	EvictionTarget float64

	// UnusedFramesBeforeEvict is how many frames a resident resource must
	// go without MarkUsed before it becomes eviction-eligible.
	UnusedFramesBeforeEvict uint64
}
