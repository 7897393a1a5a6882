// Package gpusync implements the synchronization fabric: fences and sync
// points (a monotonic GPU timeline and the CPU-visible completed value
// tracking it), and the higher-level compositions built on top — per-frame
// ring synchronization, cross-queue pipeline synchronization with a
// debug-build deadlock check, a long-lived timeline for arbitrary sync
// points, and a bounded multi-point waiter.
//
// Every CPU suspension point in this package takes an explicit timeout; a
// GPU hang must surface as a detectable fault, never an unbounded block.
package gpusync
