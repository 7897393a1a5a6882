package readback

import (
	"bytes"
	"encoding/binary"

	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// AsyncReadbackRing is a ring of BufferReadback slots retaining
// len(slots)-1 frames of latency without ever blocking the CPU (spec.md
// §4.11, grounded on TRHIAsyncReadbackRing). T must be a fixed-size type
// encoding/binary can marshal (no slices, strings, or maps) — the same
// constraint RHIAsyncReadbackRing's sizeof(T) places on its payload.
type AsyncReadbackRing[T any] struct {
	slots      []*BufferReadback
	writeIndex uint32
}

// NewAsyncReadbackRing wraps slots (each already constructed over its own
// backing buffer) as a ring. Needs at least 2 slots to provide any
// latency headroom.
func NewAsyncReadbackRing[T any](slots []*BufferReadback) *AsyncReadbackRing[T] {
	return &AsyncReadbackRing[T]{slots: slots}
}

// Latency reports how many frames behind the oldest readable slot is.
func (r *AsyncReadbackRing[T]) Latency() int { return len(r.slots) - 1 }

// EnqueueCopy writes into the current write slot and advances it.
func (r *AsyncReadbackRing[T]) EnqueueCopy(ctx queue.BaseContext, src resource.Refcounted, offset uint64) error {
	var zero T
	size := uint64(binary.Size(zero))
	err := r.slots[r.writeIndex].EnqueueCopy(ctx, src, offset, size)
	r.writeIndex = (r.writeIndex + 1) % uint32(len(r.slots))
	return err
}

// TryGetResult reads the oldest slot — (writeIndex+1) mod N, i.e. N-1
// frames of latency — returning the decoded value and whether it was
// ready.
func (r *AsyncReadbackRing[T]) TryGetResult() (T, bool) {
	var out T
	n := uint32(len(r.slots))
	readIndex := (r.writeIndex + 1) % n
	return out, r.decode(readIndex, &out)
}

// GetLatestOrDefault scans backward from the write slot for the newest
// ready result, returning defaultValue if none is ready yet.
func (r *AsyncReadbackRing[T]) GetLatestOrDefault(defaultValue T) T {
	n := uint32(len(r.slots))
	for i := uint32(0); i < n; i++ {
		index := (r.writeIndex + n - i) % n
		var out T
		if r.decode(index, &out) {
			return out
		}
	}
	return defaultValue
}

func (r *AsyncReadbackRing[T]) decode(slot uint32, out *T) bool {
	rb := r.slots[slot]
	if !rb.IsReady() {
		return false
	}
	data := make([]byte, binary.Size(*out))
	if err := rb.GetData(data); err != nil {
		return false
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, out) == nil
}
