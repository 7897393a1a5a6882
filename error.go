package rhi

import (
	"errors"

	"github.com/gogpu/rhi/hal"
)

// Sentinel errors re-exported from the hal boundary.
var (
	ErrDeviceLost      = hal.ErrDeviceLost
	ErrOutOfMemory     = hal.ErrDeviceOutOfMemory
	ErrSurfaceLost     = hal.ErrSurfaceLost
	ErrSurfaceOutdated = hal.ErrSurfaceOutdated
	ErrTimeout         = hal.ErrTimeout
)

// Public API sentinel errors.
var (
	// ErrReleased is returned when operating on a released resource.
	ErrReleased = errors.New("rhi: resource already released")

	// ErrNoAdapters is returned when no GPU adapters are found.
	ErrNoAdapters = errors.New("rhi: no GPU adapters available")

	// ErrInvalidDescriptor is returned when a required descriptor field is
	// missing or nil.
	ErrInvalidDescriptor = errors.New("rhi: invalid descriptor")
)
