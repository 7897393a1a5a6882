package rhi

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/hal"
)

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	Backends Backends
}

// Instance is the entry point for GPU operations. It owns exactly one hal
// backend, injected by the caller at creation time — this module is an
// interface-only consumer of hal (spec.md's External backend boundary), so
// there is no global backend registry to select from by name.
//
// Instance methods are safe for concurrent use, except Release() which
// must not be called concurrently with other methods.
type Instance struct {
	hal      hal.Instance
	released bool
}

// CreateInstance opens backend and wraps the resulting hal.Instance. If
// desc is nil, gputypes.DefaultInstanceDescriptor() is used.
func CreateInstance(backend hal.Backend, desc *InstanceDescriptor) (*Instance, error) {
	gpuDesc := gputypes.DefaultInstanceDescriptor()
	if desc != nil {
		gpuDesc.Backends = desc.Backends
	}

	halInstance, err := backend.CreateInstance(&hal.InstanceDescriptor{Backends: gpuDesc.Backends})
	if err != nil {
		return nil, err
	}

	return &Instance{hal: halInstance}, nil
}

// RequestAdapter requests a GPU adapter matching opts. If opts is nil, or
// no adapter satisfies it, the first enumerated adapter is returned.
func (i *Instance) RequestAdapter(opts *RequestAdapterOptions) (*Adapter, error) {
	if i.released {
		return nil, ErrReleased
	}

	exposed := i.hal.EnumerateAdapters(nil)
	if len(exposed) == 0 {
		return nil, ErrNoAdapters
	}

	chosen := selectAdapter(exposed, opts)

	return &Adapter{
		hal:      chosen.Adapter,
		info:     chosen.Info,
		features: chosen.Features,
		caps:     chosen.Capabilities,
		instance: i,
	}, nil
}

// selectAdapter picks the adapter best matching opts.PowerPreference,
// defaulting to the first entry when no preference is given or matched.
func selectAdapter(exposed []hal.ExposedAdapter, opts *RequestAdapterOptions) hal.ExposedAdapter {
	if opts == nil {
		return exposed[0]
	}
	for _, e := range exposed {
		switch opts.PowerPreference {
		case gputypes.PowerPreferenceHighPerformance:
			if e.Info.DeviceType == gputypes.DeviceTypeDiscreteGPU {
				return e
			}
		case gputypes.PowerPreferenceLowPower:
			if e.Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
				return e
			}
		}
	}
	return exposed[0]
}

// Release releases the instance and all associated resources.
func (i *Instance) Release() {
	if i.released {
		return
	}
	i.released = true
	i.hal.Destroy()
}
