// Package query implements the frame-buffered query heap allocator, the
// occlusion query manager and conditional rendering built on top of it,
// and the HiZ mip-chain buffer used to drive hierarchical occlusion
// culling (spec.md §4.12).
package query
