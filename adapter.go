package rhi

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/gpusync"
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// DeviceDescriptor configures device creation.
type DeviceDescriptor struct {
	Label            string
	RequiredFeatures Features
	RequiredLimits   Limits
}

// Adapter represents a physical GPU.
type Adapter struct {
	hal      hal.Adapter
	info     AdapterInfo
	features Features
	caps     hal.Capabilities
	instance *Instance
	released bool
}

// Info returns adapter metadata.
func (a *Adapter) Info() AdapterInfo { return a.info }

// Features returns supported features.
func (a *Adapter) Features() Features { return a.features }

// Capabilities returns the adapter's detailed capability block, including
// whether it supports Enhanced Barriers (barrier.Scope.FlushEnhancedBarriers).
func (a *Adapter) Capabilities() hal.Capabilities { return a.caps }

// RequestDevice opens a logical device from this adapter with the given
// features and limits. If desc is nil, gputypes.DefaultLimits() is used
// and no optional features are requested.
func (a *Adapter) RequestDevice(desc *DeviceDescriptor) (*Device, error) {
	if a.released {
		return nil, ErrReleased
	}

	var features gputypes.Features
	var limits gputypes.Limits
	var label string
	if desc != nil {
		features = desc.RequiredFeatures
		limits = desc.RequiredLimits
		label = desc.Label
	} else {
		limits = gputypes.DefaultLimits()
	}

	opened, err := a.hal.Open(features, limits)
	if err != nil {
		return nil, fmt.Errorf("rhi: failed to open device: %w", err)
	}

	halFence, err := opened.Device.CreateFence()
	if err != nil {
		opened.Device.Destroy()
		return nil, fmt.Errorf("rhi: failed to create device fence: %w", err)
	}

	syncFence := gpusync.NewFence(&halFenceWait{device: opened.Device, fence: halFence})
	backend := newHALQueueBackend(opened.Device, opened.Queue, halFence)

	device := &Device{
		hal:      opened.Device,
		features: features,
		limits:   limits,
		label:    label,
		adapter:  a,
		deferred: resource.NewDeferredDeleteQueue(),
	}
	device.queue = &Queue{
		backend:   backend,
		queue:     queue.New(queue.Graphics, 0, backend),
		halFence:  halFence,
		syncFence: syncFence,
		device:    device,
	}

	return device, nil
}

// Release releases the adapter.
func (a *Adapter) Release() {
	if a.released {
		return
	}
	a.released = true
	a.hal.Destroy()
}
