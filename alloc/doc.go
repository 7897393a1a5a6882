// Package alloc implements the buffer sub-allocators built on top of
// backing buffers the device owns: a linear bump allocator, a
// multi-frame ring allocator, fixed-size and multi-size pools, a
// 256-byte-aligned constant-buffer allocator, and a dynamic buffer
// manager composing the two frame-aware allocators behind typed
// helpers for vertex/index/constant data.
//
// None of these allocators are internally synchronized (spec.md §5):
// callers must use one instance per thread or provide external mutual
// exclusion.
package alloc
