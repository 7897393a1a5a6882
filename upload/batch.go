package upload

import "github.com/gogpu/rhi/queue"

// DefaultMaxRequests bounds how many requests a Batch accumulates before
// Add starts rejecting further ones.
const DefaultMaxRequests = 256

// Batch collects many buffer and texture upload requests and executes them
// in one pass against a shared Heap (spec.md §4.10). Requests that fail to
// stage (heap exhaustion) are skipped rather than aborting the whole
// batch — Execute returns how many actually landed.
type Batch struct {
	heap        *Heap
	maxRequests int

	bufferReqs    []BufferUploadRequest
	textureReqs   []TextureUploadRequest
	totalDataSize uint64
}

// NewBatch creates a Batch over heap, accumulating at most maxRequests
// requests (DefaultMaxRequests if 0).
func NewBatch(heap *Heap, maxRequests int) *Batch {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	return &Batch{heap: heap, maxRequests: maxRequests}
}

// RequestCount returns the number of requests currently queued.
func (b *Batch) RequestCount() int { return len(b.bufferReqs) + len(b.textureReqs) }

// TotalDataSize returns the sum of all queued requests' source data size.
func (b *Batch) TotalDataSize() uint64 { return b.totalDataSize }

// AddBuffer queues a buffer upload request.
func (b *Batch) AddBuffer(req BufferUploadRequest) error {
	if b.RequestCount() >= b.maxRequests {
		return ErrStagingExhausted
	}
	b.bufferReqs = append(b.bufferReqs, req)
	b.totalDataSize += uint64(len(req.Src))
	return nil
}

// AddTexture queues a texture upload request.
func (b *Batch) AddTexture(req TextureUploadRequest) error {
	if b.RequestCount() >= b.maxRequests {
		return ErrStagingExhausted
	}
	b.textureReqs = append(b.textureReqs, req)
	b.totalDataSize += uint64(req.SrcRowPitch) * uint64(req.Height) * uint64(maxUint32(req.Depth, 1))
	return nil
}

// Clear discards all queued requests without executing them.
func (b *Batch) Clear() {
	b.bufferReqs = b.bufferReqs[:0]
	b.textureReqs = b.textureReqs[:0]
	b.totalDataSize = 0
}

// Execute records every queued request's copy on ctx through the batch's
// Heap, then clears the batch. It returns the number of requests that
// staged successfully; a request that fails to stage (heap exhaustion) is
// skipped and does not abort the rest.
func (b *Batch) Execute(ctx queue.BaseContext) int {
	uploaded := 0
	for _, req := range b.bufferReqs {
		if err := b.heap.UploadBuffer(ctx, req); err == nil {
			uploaded++
		}
	}
	for _, req := range b.textureReqs {
		if err := b.heap.UploadTexture(ctx, req); err == nil {
			uploaded++
		}
	}
	b.Clear()
	return uploaded
}
