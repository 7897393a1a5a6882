// Package rhi is a vendor-neutral rendering hardware interface over
// explicit, D3D12-class GPU APIs: resource lifetime and refcounting,
// memory sub-allocation, state tracking and barrier emission, CPU/GPU
// synchronization, residency and streaming, queries and readback, and
// queue/command submission.
//
// rhi itself holds no concrete backend. Callers inject one that implements
// the hal package's interfaces (hal.Backend) when creating an Instance.
//
// # Quick Start
//
//	instance, err := rhi.CreateInstance(myBackend, nil)
//	adapter, err := instance.RequestAdapter(nil)
//	device, err := adapter.RequestDevice(nil)
//
// # Resource Lifecycle
//
// Every GPU resource (Buffer, Texture, TextureView, Sampler, ShaderModule,
// pipelines, bind groups) is reference-counted internally via resource.Base.
// Release() drops one reference; the underlying hal object is destroyed
// once the count reaches zero. Using a resource after its last reference is
// released is a programming error.
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use, except their
// own Release methods. CommandEncoder and its pass encoders
// (RenderPassEncoder, ComputePassEncoder) are NOT thread-safe.
package rhi
