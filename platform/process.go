package platform

import (
	"runtime"
	"time"
)

// Sleep suspends the calling goroutine for d, matching PlatformProcess::Sleep.
func Sleep(d time.Duration) { time.Sleep(d) }

// Yield hints the scheduler to run other goroutines, matching
// PlatformProcess::YieldThread. Go's runtime.Gosched is the closest
// portable equivalent to a cooperative OS thread yield.
func Yield() { runtime.Gosched() }

// StackFrame is one entry of a captured call stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// CaptureStack walks the current goroutine's call stack starting
// `skip` frames up from the caller, matching PlatformStackWalk's
// breadcrumb capture used for device-lost diagnostics. Built on
// runtime.Callers/CallersFrames, the portable stdlib stack walker —
// no concrete per-OS symbol resolution is layered on top.
func CaptureStack(skip, max int) []StackFrame {
	pcs := make([]uintptr, max)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		out = append(out, StackFrame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			break
		}
	}
	return out
}
