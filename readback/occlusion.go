package readback

import (
	"encoding/binary"

	"github.com/gogpu/rhi/queue"
	"github.com/gogpu/rhi/resource"
)

// occlusionFrameLatency is the two-slot depth the original uses for
// occlusion query readback.
const occlusionFrameLatency = 2

// OcclusionQueryReadback is a two-slot ring of readback buffers sized for
// up to maxQueries 64-bit sample counts (spec.md §4.11).
type OcclusionQueryReadback struct {
	readbacks    [occlusionFrameLatency]*BufferReadback
	cached       [occlusionFrameLatency][]uint64
	currentFrame uint32
	maxQueries   uint32
}

// NewOcclusionQueryReadback creates an OcclusionQueryReadback for up to
// maxQueries samples, with each slot constructed by newSlot.
func NewOcclusionQueryReadback(maxQueries uint32, newSlot func() *BufferReadback) *OcclusionQueryReadback {
	o := &OcclusionQueryReadback{maxQueries: maxQueries}
	for i := range o.readbacks {
		o.readbacks[i] = newSlot()
		o.cached[i] = make([]uint64, maxQueries)
	}
	return o
}

// EnqueueReadback copies queryCount 64-bit sample counts starting at
// startQuery from src (an intermediate buffer the query heap's results
// were already resolved into) into the current frame's slot.
func (o *OcclusionQueryReadback) EnqueueReadback(ctx queue.BaseContext, src resource.Refcounted, startQuery, queryCount uint32) error {
	offset := uint64(startQuery) * 8
	size := uint64(queryCount) * 8
	return o.readbacks[o.currentFrame].EnqueueCopy(ctx, src, offset, size)
}

// OnFrameEnd reads the far slot (the one with the readback issued
// occlusionFrameLatency frames ago) and caches its results, then advances
// to the next slot.
func (o *OcclusionQueryReadback) OnFrameEnd() {
	readFrame := (o.currentFrame + 1) % occlusionFrameLatency
	rb := o.readbacks[readFrame]
	if rb.IsReady() {
		data := make([]byte, uint64(o.maxQueries)*8)
		if err := rb.GetData(data); err == nil {
			for i := uint32(0); i < o.maxQueries; i++ {
				o.cached[readFrame][i] = binary.LittleEndian.Uint64(data[i*8:])
			}
		}
	}
	o.currentFrame = (o.currentFrame + 1) % occlusionFrameLatency
}

// GetQueryResult returns the cached sample count for queryIndex, or false
// if the index is out of range.
func (o *OcclusionQueryReadback) GetQueryResult(queryIndex uint32) (uint64, bool) {
	if queryIndex >= o.maxQueries {
		return 0, false
	}
	readFrame := (o.currentFrame + 1) % occlusionFrameLatency
	return o.cached[readFrame][queryIndex], true
}

// IsVisible reports whether queryIndex's cached sample count meets
// threshold. An out-of-range or never-resolved index defaults to visible
// ("optimistic visibility" — spec.md §4.12).
func (o *OcclusionQueryReadback) IsVisible(queryIndex uint32, threshold uint64) bool {
	samples, ok := o.GetQueryResult(queryIndex)
	if !ok {
		return true
	}
	return samples >= threshold
}
