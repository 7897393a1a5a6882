package platform

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Verbosity mirrors OutputDevice's LogVerbosity ladder exactly, in the
// same fatal-to-noisiest order as the source.
type Verbosity uint8

const (
	VerbosityFatal Verbosity = iota
	Error
	Warning
	Display
	Log
	Verbose
	VeryVerbose
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityFatal:
		return "Fatal"
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Display:
		return "Display"
	case Log:
		return "Log"
	case Verbose:
		return "Verbose"
	case VeryVerbose:
		return "VeryVerbose"
	default:
		return "Unknown"
	}
}

func (v Verbosity) slogLevel() slog.Level {
	switch {
	case v <= Error:
		return slog.LevelError
	case v == Warning:
		return slog.LevelWarn
	case v <= Log:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// OutputDevice is the log sink trait every component writes diagnostics
// through, matching OutputDevice::Serialize plus its Log/LogWarning/
// LogError/LogFatal convenience wrappers.
type OutputDevice interface {
	Serialize(message string, verbosity Verbosity)
}

// slogOutputDevice adapts OutputDevice onto log/slog, the same ecosystem
// choice hal/logger.go already makes for this module — an atomically
// swappable *slog.Logger, nop by default.
type slogOutputDevice struct{ logger *slog.Logger }

// NewSlogOutputDevice wraps an *slog.Logger as an OutputDevice.
func NewSlogOutputDevice(logger *slog.Logger) OutputDevice {
	return slogOutputDevice{logger: logger}
}

func (d slogOutputDevice) Serialize(message string, verbosity Verbosity) {
	d.logger.Log(context.Background(), verbosity.slogLevel(), message, "verbosity", verbosity.String())
}

var devicePtr atomic.Pointer[OutputDevice]

func init() {
	var d OutputDevice = NewSlogOutputDevice(slog.New(nopHandler{}))
	devicePtr.Store(&d)
}

// SetOutputDevice installs the process-wide OutputDevice. Safe for
// concurrent use, the same swap discipline as hal.SetLogger.
func SetOutputDevice(d OutputDevice) {
	if d == nil {
		d = NewSlogOutputDevice(slog.New(nopHandler{}))
	}
	devicePtr.Store(&d)
}

// Device returns the current process-wide OutputDevice.
func Device() OutputDevice { return *devicePtr.Load() }

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// FatalFunc is invoked for the core's debug-build "fatal" error paths
// (StateViolation, ConfigurationError overflow) instead of a real
// process abort, so the core stays testable: tests install a FatalFunc
// that records the call and returns rather than calling os.Exit.
type FatalFunc func(message string)

var fatalHook atomic.Pointer[FatalFunc]

func init() {
	var f FatalFunc = func(message string) {
		Device().Serialize(message, VerbosityFatal)
	}
	fatalHook.Store(&f)
}

// SetFatal installs the process-wide fatal hook.
func SetFatal(f FatalFunc) {
	if f == nil {
		f = func(message string) { Device().Serialize(message, VerbosityFatal) }
	}
	fatalHook.Store(&f)
}

// Fatal invokes the installed FatalFunc. By default this only logs at
// VerbosityFatal; it never calls os.Exit on its own, since the decision
// to abort the process belongs to the embedding application, not this
// library.
func Fatal(message string) { (*fatalHook.Load())(message) }
