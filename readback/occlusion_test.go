package readback

import (
	"encoding/binary"
	"testing"

	"github.com/gogpu/rhi/gpusync"
)

func newTestOcclusionReadback(t *testing.T, maxQueries uint32) *OcclusionQueryReadback {
	t.Helper()
	q := newFakeCopyQueue()
	tracker := gpusync.NewFenceValueTracker(gpusync.NewFence(nil))
	return NewOcclusionQueryReadback(maxQueries, func() *BufferReadback {
		return NewBufferReadback(newFakeBuffer(uint64(maxQueries)*8), q, tracker)
	})
}

func TestOcclusionQueryReadbackDefaultsOptimisticWhenNoData(t *testing.T) {
	o := newTestOcclusionReadback(t, 4)
	if !o.IsVisible(10, 1) {
		t.Fatal("expected an out-of-range query to default to visible")
	}
}

func TestOcclusionQueryReadbackCachesResultsAfterFrameEnd(t *testing.T) {
	o := newTestOcclusionReadback(t, 4)
	src := newFakeBuffer(32)
	binary.LittleEndian.PutUint64(src.mapped[0:8], 5)
	binary.LittleEndian.PutUint64(src.mapped[8:16], 0)

	ctx := &fakeContext{}
	// Steady-state usage: enqueue the same result every frame and drive
	// OnFrameEnd forward enough rounds that both ring slots have been
	// written and cached at least once, regardless of which slot
	// GetQueryResult's read-index parity currently lands on.
	for frame := 0; frame < occlusionFrameLatency+2; frame++ {
		if err := o.EnqueueReadback(ctx, src, 0, 2); err != nil {
			t.Fatal(err)
		}
		o.OnFrameEnd()
	}

	samples, ok := o.GetQueryResult(0)
	if !ok || samples != 5 {
		t.Fatalf("GetQueryResult(0) = (%d, %v), want (5, true)", samples, ok)
	}
	if !o.IsVisible(0, 1) {
		t.Fatal("expected query 0 to be visible at threshold 1 with 5 samples")
	}
	if o.IsVisible(1, 10) {
		t.Fatal("expected query 1 to be not-visible at threshold 10 with 0 cached samples")
	}
}
