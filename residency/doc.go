// Package residency implements GPU memory residency tracking with
// priority/LRU-based eviction, and the texture streaming manager built
// on top of it (spec.md §4.13).
package residency
