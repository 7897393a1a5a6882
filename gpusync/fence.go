package gpusync

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTimeout is the 30-second deadline applied to frame-level and
// sync-point waits unless a caller overrides it. GPU hangs must become
// detectable CPU-side faults rather than unbounded blocking.
const DefaultTimeout = 30 * time.Second

// Infinite is the timeout sentinel meaning "wait forever", matching the
// spec's timeout=MAX convention. A timeout of exactly 0 means "check once,
// do not block" — the non-blocking poll every is_complete()/try_* helper in
// this package is built from.
const Infinite time.Duration = -1

// Backend lets a Fence delegate its blocking wait to a real GPU timeline
// (a hal.Device's Wait, in the layer above this package) instead of the
// local condition-variable wait used when a Fence is purely CPU-driven
// (tests, or a software/noop backend). A nil Backend is a legal, fully
// functional Fence — SignalCPU is then the only way its value advances.
type Backend interface {
	// Wait blocks until the backend's timeline reaches value, or timeout
	// elapses. The return matches hal.Device.Wait's contract: (reached,
	// err) where err is non-nil only on a genuine device error.
	Wait(value uint64, timeout time.Duration) (bool, error)
}

// Fence is a monotonic 64-bit GPU timeline value pair: a CPU-visible
// completed value and the last value a producer has signaled. Completed
// never decreases, and never exceeds LastSignaled.
type Fence struct {
	completed    atomic.Uint64
	lastSignaled atomic.Uint64

	mu   sync.Mutex
	cond *sync.Cond

	backend Backend

	// SharingHandle is an opaque cross-API/cross-process export of this
	// fence (e.g. a D3D12 shared handle). Unused when nil; gpusync never
	// interprets it.
	SharingHandle any
}

// NewFence creates a fence at completed value 0. backend may be nil for a
// purely CPU-signaled fence.
func NewFence(backend Backend) *Fence {
	f := &Fence{backend: backend}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// CompletedValue is a single atomic load of the fence's current value.
func (f *Fence) CompletedValue() uint64 {
	return f.completed.Load()
}

// LastSignaled returns the highest value a producer has signaled so far,
// which may be ahead of CompletedValue while the GPU is still catching up.
func (f *Fence) LastSignaled() uint64 {
	return f.lastSignaled.Load()
}

// SignalCPU sets Completed = max(Completed, v) and wakes any blocked
// waiters. It exists for tests and for software backends that have no real
// GPU timeline to poll; production code driven by a real Backend should
// not need to call it directly.
func (f *Fence) SignalCPU(v uint64) {
	f.mu.Lock()
	if v > f.lastSignaled.Load() {
		f.lastSignaled.Store(v)
	}
	for {
		cur := f.completed.Load()
		if v <= cur {
			break
		}
		if f.completed.CompareAndSwap(cur, v) {
			break
		}
	}
	f.cond.Broadcast()
	f.mu.Unlock()
}

// Wait blocks until Completed >= v or timeout elapses, returning whether it
// succeeded. Pass Infinite to wait forever, or 0 to poll once without
// blocking.
func (f *Fence) Wait(v uint64, timeout time.Duration) (bool, error) {
	if f.CompletedValue() >= v {
		return true, nil
	}
	if f.backend != nil {
		ok, err := f.backend.Wait(v, timeout)
		if err != nil {
			return false, err
		}
		if ok {
			f.SignalCPU(v)
		}
		return ok, nil
	}
	return f.waitLocal(v, timeout), nil
}

// waitLocal blocks on the condition variable until SignalCPU crosses v or
// the deadline passes. sync.Cond has no timed wait, so a goroutine races
// the deadline against a broadcast-driven wake loop.
func (f *Fence) waitLocal(v uint64, timeout time.Duration) bool {
	if timeout == 0 {
		return f.CompletedValue() >= v
	}

	done := make(chan struct{})
	var timedOut atomic.Bool
	go func() {
		f.mu.Lock()
		for f.completed.Load() < v && !timedOut.Load() {
			f.cond.Wait()
		}
		f.mu.Unlock()
		close(done)
	}()

	if timeout == Infinite {
		<-done
		return true
	}

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		timedOut.Store(true)
		f.mu.Lock()
		f.cond.Broadcast() // wake the waiting goroutine so it can observe timedOut
		f.mu.Unlock()
		<-done
		return f.CompletedValue() >= v
	}
}

// WaitAll blocks until Completed has reached every value in vs (equivalent
// to waiting for their maximum, since a fence's value is a single monotone
// counter), or timeout elapses.
func (f *Fence) WaitAll(vs []uint64, timeout time.Duration) (bool, error) {
	target := uint64(0)
	for _, v := range vs {
		if v > target {
			target = v
		}
	}
	return f.Wait(target, timeout)
}

// WaitAny blocks until Completed has reached at least one value in vs
// (equivalent to waiting for their minimum), or timeout elapses.
func (f *Fence) WaitAny(vs []uint64, timeout time.Duration) (bool, error) {
	if len(vs) == 0 {
		return true, nil
	}
	target := vs[0]
	for _, v := range vs[1:] {
		if v < target {
			target = v
		}
	}
	return f.Wait(target, timeout)
}
