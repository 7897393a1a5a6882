package residency

import "sort"

// EvictFunc performs the backend-specific eviction call for a resource
// (e.g. ID3D12Device::Evict) after Manager has already decided it should
// be evicted. Backend-dependent, so it's a caller-supplied hook, the
// same pattern as upload.MipGenerationFunc.
type EvictFunc func(Resource) error

// MakeResidentFunc performs the backend-specific call to bring an
// evicted resource back into VRAM (e.g. ID3D12Device::MakeResident).
type MakeResidentFunc func(Resource) error

type trackedEntry struct {
	resource           Resource
	lastUsedFrame      uint64
	lastUsedFenceValue uint64
	status             Status
}

// maxEvictionCandidates bounds a single PerformEviction pass, matching
// original_source/RHIResidency.cpp's fixed-size `TrackedResource*
// candidates[64]` stack array.
const maxEvictionCandidates = 64

// Manager tracks every resource-backed GPU allocation's residency
// status against a VRAM budget, evicting least-recently-used,
// below-maximum-priority resources once usage crosses
// Config.EvictionThreshold (spec.md §4.13,
// original_source/RHIResidency.cpp's RHIResidencyManager).
type Manager struct {
	config Config

	tracked       []trackedEntry
	currentFrame  uint64
	currentUsage  uint64
	residentCount uint32
	evictedCount  uint32

	Evict        EvictFunc
	MakeResident MakeResidentFunc
}

// NewManager creates a Manager governed by config.
func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// BeginFrame records the current frame number, used by MarkUsed and the
// eviction selector's unused-frame calculation.
func (m *Manager) BeginFrame(frameNumber uint64) {
	m.currentFrame = frameNumber
}

// EndFrame runs eviction if current usage has crossed the configured
// threshold of the VRAM budget.
func (m *Manager) EndFrame() error {
	if m.UsageRatio() > m.config.EvictionThreshold {
		return m.PerformEviction()
	}
	return nil
}

// Register starts tracking r as resident, accounting its size against
// current usage.
func (m *Manager) Register(r Resource) {
	if r == nil {
		return
	}
	m.tracked = append(m.tracked, trackedEntry{
		resource:      r,
		lastUsedFrame: m.currentFrame,
		status:        Resident,
	})
	m.currentUsage += r.Size()
	m.residentCount++
}

// Unregister stops tracking r, reversing its usage/count contribution.
func (m *Manager) Unregister(r Resource) {
	if r == nil {
		return
	}
	for i := range m.tracked {
		if m.tracked[i].resource == r {
			if m.tracked[i].status == Resident {
				m.currentUsage -= r.Size()
				m.residentCount--
			} else {
				m.evictedCount--
			}
			last := len(m.tracked) - 1
			m.tracked[i] = m.tracked[last]
			m.tracked = m.tracked[:last]
			return
		}
	}
}

// MarkUsed records that r was used this frame at fenceValue, also
// forwarding the notification to the resource itself.
func (m *Manager) MarkUsed(r Resource, fenceValue uint64) {
	if r == nil {
		return
	}
	for i := range m.tracked {
		if m.tracked[i].resource == r {
			m.tracked[i].lastUsedFrame = m.currentFrame
			m.tracked[i].lastUsedFenceValue = fenceValue
			r.SetLastUsed(m.currentFrame, fenceValue)
			return
		}
	}
}

// MarkUsedMany calls MarkUsed for every resource in resources.
func (m *Manager) MarkUsedMany(resources []Resource, fenceValue uint64) {
	for _, r := range resources {
		m.MarkUsed(r, fenceValue)
	}
}

// EnsureResident brings every Evicted resource in resources back to
// Resident, calling MakeResident for each if set.
func (m *Manager) EnsureResident(resources []Resource) error {
	for _, r := range resources {
		if r == nil {
			continue
		}
		for i := range m.tracked {
			if m.tracked[i].resource != r || m.tracked[i].status != Evicted {
				continue
			}
			if m.MakeResident != nil {
				if err := m.MakeResident(r); err != nil {
					return err
				}
			}
			m.tracked[i].status = Resident
			m.currentUsage += r.Size()
			m.residentCount++
			m.evictedCount--
		}
	}
	return nil
}

// PerformEviction selects up to maxEvictionCandidates resident,
// below-maximum-priority resources unused for at least
// Config.UnusedFramesBeforeEvict frames, evicting them until the
// accumulated freed size reaches the target reduction (current usage
// minus Config.EvictionTarget of the budget).
func (m *Manager) PerformEviction() error {
	if m.config.MaxVRAMBytes == 0 || m.UsageRatio() <= m.config.EvictionTarget {
		return nil
	}

	targetReduction := m.currentUsage - uint64(float64(m.config.MaxVRAMBytes)*m.config.EvictionTarget)
	candidates := m.selectEvictionCandidates(targetReduction)

	for _, idx := range candidates {
		entry := &m.tracked[idx]
		if m.Evict != nil {
			if err := m.Evict(entry.resource); err != nil {
				return err
			}
		}
		entry.status = Evicted
		m.currentUsage -= entry.resource.Size()
		m.residentCount--
		m.evictedCount++
	}
	return nil
}

// selectEvictionCandidates walks the tracked list least-recently-used
// first (ascending last-used frame; entries with equal frames keep their
// list order) and returns indices into m.tracked for resident,
// below-maximum-priority, long-unused entries, stopping as soon as their
// accumulated size reaches targetSize or maxEvictionCandidates is hit.
func (m *Manager) selectEvictionCandidates(targetSize uint64) []int {
	var candidates []int
	var accumulated uint64

	order := make([]int, len(m.tracked))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.tracked[order[a]].lastUsedFrame < m.tracked[order[b]].lastUsedFrame
	})

	for _, i := range order {
		if accumulated >= targetSize {
			break
		}
		entry := &m.tracked[i]
		if entry.status != Resident {
			continue
		}
		if entry.resource.ResidencyPriority() >= PriorityMaximum {
			continue
		}
		unusedFrames := m.currentFrame - entry.lastUsedFrame
		if unusedFrames >= m.config.UnusedFramesBeforeEvict {
			if len(candidates) >= maxEvictionCandidates {
				break
			}
			candidates = append(candidates, i)
			accumulated += entry.resource.Size()
		}
	}
	return candidates
}

// UsageRatio returns current usage as a fraction of the VRAM budget, 0
// if the budget is unset.
func (m *Manager) UsageRatio() float64 {
	if m.config.MaxVRAMBytes == 0 {
		return 0
	}
	return float64(m.currentUsage) / float64(m.config.MaxVRAMBytes)
}

// CurrentUsage returns the tracked byte usage of all Resident entries.
func (m *Manager) CurrentUsage() uint64 { return m.currentUsage }

// ResidentCount returns how many tracked entries are currently Resident.
func (m *Manager) ResidentCount() uint32 { return m.residentCount }

// EvictedCount returns how many tracked entries are currently Evicted.
func (m *Manager) EvictedCount() uint32 { return m.evictedCount }

// SetMaxVRAMBytes retunes the VRAM budget live, for a console variable
// changed at runtime rather than fixed at NewManager time.
func (m *Manager) SetMaxVRAMBytes(bytes uint64) { m.config.MaxVRAMBytes = bytes }

// SetEvictionThreshold retunes the usage ratio that triggers eviction.
func (m *Manager) SetEvictionThreshold(ratio float64) { m.config.EvictionThreshold = ratio }

// SetEvictionTarget retunes the usage ratio PerformEviction aims for.
func (m *Manager) SetEvictionTarget(ratio float64) { m.config.EvictionTarget = ratio }

// SetUnusedFramesBeforeEvict retunes how many unused frames make a
// resident resource eviction-eligible.
func (m *Manager) SetUnusedFramesBeforeEvict(frames uint64) {
	m.config.UnusedFramesBeforeEvict = frames
}
