// Package upload implements the staging path that gets CPU data onto the
// GPU: a ring-backed upload heap for synchronous buffer/texture uploads, a
// batch that accumulates many requests before executing them in one pass,
// an async upload manager gated by a dedicated copy-queue fence, and a
// texture loader built on top of both (spec.md §4.10, grounded on
// RHIUploadHeap.h/.cpp).
package upload
