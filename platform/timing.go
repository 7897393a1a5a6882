package platform

import "time"

// Clock is the high-resolution timing trait, giving both a monotonic
// cycle count (for cheap relative timing) and a seconds value (for
// cross-component duration math), matching GenericPlatformTime's split
// between Cycles() and Seconds().
type Clock interface {
	// Cycles returns a monotonic, platform-defined tick count. Only
	// differences between two calls are meaningful.
	Cycles() int64

	// Seconds returns a monotonic time value in seconds, suitable for
	// measuring elapsed durations across frames.
	Seconds() float64
}

type stdClock struct{ start time.Time }

// NewClock returns the stdlib-backed Clock, using time.Now's monotonic
// reading the way GenericPlatformTime uses QueryPerformanceCounter.
func NewClock() Clock { return &stdClock{start: monotonicNow()} }

func monotonicNow() time.Time { return time.Now() }

func (c *stdClock) Cycles() int64    { return time.Since(c.start).Nanoseconds() }
func (c *stdClock) Seconds() float64 { return time.Since(c.start).Seconds() }
