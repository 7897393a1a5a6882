// Package hal defines the backend-agnostic device boundary this module
// sits on top of: a graphics backend (D3D12, Vulkan, Metal, or a testing
// stand-in) is expected to implement these interfaces, but none is
// provided or translated here. hal stops at the interface.
//
// # Architecture
//
// The boundary is organized into several layers:
//
//  1. Backend - Factory for creating instances (entry point)
//  2. Instance - Entry point for adapter enumeration and surface creation
//  3. Adapter - Physical GPU representation with capability queries
//  4. Device - Logical device for resource creation and command submission
//  5. Queue - Command buffer submission and presentation
//  6. CommandEncoder - Command recording
//
// # Design Principles
//
// hal prioritizes portability over safety, delegating validation to the
// higher layers built on top of it (resource, queue, barrier, and the
// rest of this module). This means:
//
//   - Most methods are unsafe in terms of GPU state validation
//   - Validation is the caller's responsibility
//   - Only unrecoverable errors are returned (out of memory, device lost)
//   - Invalid usage results in undefined behavior at the GPU level
//
// # Resource Types
//
// All GPU resources (buffers, textures, pipelines, etc.) implement a
// Destroy method. Resources must be explicitly destroyed to free GPU
// memory; this package does not track or refcount them — see the
// resource package for that.
//
// # Thread Safety
//
// Unless explicitly stated, hal interfaces are not thread-safe.
// Synchronization is the caller's responsibility. Notable exception:
//
//   - Queue.Submit is typically thread-safe (backend-specific)
//
// # Error Handling
//
// hal uses error values for unrecoverable errors:
//
//   - ErrDeviceOutOfMemory - GPU memory exhausted
//   - ErrDeviceLost - GPU disconnected or driver reset
//   - ErrSurfaceLost - Window destroyed or surface invalidated
//   - ErrSurfaceOutdated - Window resized, need reconfiguration
//
// Validation errors (invalid descriptors, incorrect usage) are the
// caller's responsibility and are not checked by hal.
package hal
