package residency

import "github.com/gogpu/rhi/platform"

// BindConfig registers m's eviction policy against reg as console
// variables named "residency.*", each wired so a subsequent Set on the
// returned variables retunes the live Manager (spec.md §6's "tunable
// knobs... registered against it by the owning component").
//
// Values round-trip through the uint64/float64 types Config already
// uses; a CVar set with a mismatched type (e.g. a string) is ignored
// rather than panicking, since platform.CVar carries values as `any`.
func (m *Manager) BindConfig(reg *platform.CVarRegistry) {
	maxVRAM := reg.Register("residency.MaxVRAMBytes", int64(m.config.MaxVRAMBytes))
	maxVRAM.OnChange(func(v *platform.CVar) {
		if n, ok := v.Value().(int64); ok && n >= 0 {
			m.SetMaxVRAMBytes(uint64(n))
		}
	})

	threshold := reg.Register("residency.EvictionThreshold", m.config.EvictionThreshold)
	threshold.OnChange(func(v *platform.CVar) {
		if f, ok := v.Value().(float64); ok {
			m.SetEvictionThreshold(f)
		}
	})

	target := reg.Register("residency.EvictionTarget", m.config.EvictionTarget)
	target.OnChange(func(v *platform.CVar) {
		if f, ok := v.Value().(float64); ok {
			m.SetEvictionTarget(f)
		}
	})

	unusedFrames := reg.Register("residency.UnusedFramesBeforeEvict", int64(m.config.UnusedFramesBeforeEvict))
	unusedFrames.OnChange(func(v *platform.CVar) {
		if n, ok := v.Value().(int64); ok && n >= 0 {
			m.SetUnusedFramesBeforeEvict(uint64(n))
		}
	})
}
