// Package readback implements the GPU-to-CPU copy-back path: a single
// fence-gated buffer readback, its texture-shaped variant with row/slice
// pitch, a generic multi-frame readback ring for low-latency polling data
// (occlusion counters, GPU timers), a two-slot occlusion query cache, and
// a screen-capture helper built on top (spec.md §4.11, grounded on
// RHIAsyncReadback.h/.cpp and RHITextureReadback.h/.cpp).
package readback
