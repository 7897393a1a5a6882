package queue

import "github.com/gogpu/rhi/gpusync"

// AllocatorStatus is one of a CommandAllocator's four lifecycle states
// (spec §4.4).
type AllocatorStatus uint8

const (
	// RecordingHost: open for a Context to record commands into.
	RecordingHost AllocatorStatus = iota
	// Closed: recording finished, command lists ready for submission.
	Closed
	// InUseGPU: submitted; tagged with a fence value the GPU must reach
	// before the allocator's memory may be reused.
	InUseGPU
	// Reusable: the tagged fence has completed; safe to Reset.
	Reusable
)

func (s AllocatorStatus) String() string {
	switch s {
	case RecordingHost:
		return "recording-host"
	case Closed:
		return "closed"
	case InUseGPU:
		return "in-use-gpu"
	case Reusable:
		return "reusable"
	default:
		return "unknown"
	}
}

// AllocatorBackend is the native reset hook behind a CommandAllocator —
// freeing/recycling the backing command-list memory a real API allocates
// (e.g. ID3D12CommandAllocator::Reset).
type AllocatorBackend interface {
	Reset() error
}

// CommandAllocator owns the backing memory for one or more command lists
// (spec §4.4). It is tagged with a wait-fence and value once submitted; a
// pool reclaims it once that fence completes.
type CommandAllocator struct {
	kind    Kind
	backend AllocatorBackend
	status  AllocatorStatus

	waitFence *gpusync.Fence
	waitValue uint64
}

// NewCommandAllocator creates an allocator in RecordingHost state.
func NewCommandAllocator(kind Kind, backend AllocatorBackend) *CommandAllocator {
	return &CommandAllocator{kind: kind, backend: backend, status: RecordingHost}
}

// Kind returns the queue family this allocator serves.
func (a *CommandAllocator) Kind() Kind { return a.kind }

// Status returns the current lifecycle state.
func (a *CommandAllocator) Status() AllocatorStatus { return a.status }

// IsInUse reports whether the GPU may still be reading from this
// allocator's memory.
func (a *CommandAllocator) IsInUse() bool { return a.status == InUseGPU }

// IsWaitComplete reports fence.completed() >= value for the allocator's
// tagged wait point. True (vacuously) for an allocator never submitted.
func (a *CommandAllocator) IsWaitComplete() bool {
	if a.waitFence == nil {
		return true
	}
	return a.waitFence.CompletedValue() >= a.waitValue
}

// Close transitions RecordingHost -> Closed once a Context finishes
// recording into this allocator.
func (a *CommandAllocator) Close() {
	a.status = Closed
}

// Submit tags the allocator with the fence value its submitted command
// lists will retire at, and transitions Closed -> InUseGPU.
func (a *CommandAllocator) Submit(fence *gpusync.Fence, value uint64) {
	a.waitFence = fence
	a.waitValue = value
	a.status = InUseGPU
}

// Poll transitions InUseGPU -> Reusable once IsWaitComplete becomes true.
// A pool calls this before deciding whether an allocator can be handed
// out again.
func (a *CommandAllocator) Poll() {
	if a.status == InUseGPU && a.IsWaitComplete() {
		a.status = Reusable
	}
}

// Reset requires !IsInUse(); it invokes the native reset and transitions
// back to RecordingHost. Returns ErrAllocatorInUse if the GPU may still be
// reading from this allocator.
func (a *CommandAllocator) Reset() error {
	if a.IsInUse() {
		return ErrAllocatorInUse
	}
	if err := a.backend.Reset(); err != nil {
		return err
	}
	a.waitFence = nil
	a.waitValue = 0
	a.status = RecordingHost
	return nil
}
