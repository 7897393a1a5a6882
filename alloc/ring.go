package alloc

// ringFrame records the head offset a frame's allocations started past,
// tagged with the frame number it will retire at.
type ringFrame struct {
	frameNumber uint64 // 0 means the slot is empty/retired
	offset      uint64
}

// Ring is a multi-frame ring allocator over a single backing buffer
// (spec.md §4.9, grounded on RHIRingBufferAllocator). It retains D
// frames of allocation history in a slot array so BeginFrame can
// release the offsets of frames the GPU has finished with and advance
// the tail to the oldest still-active offset.
type Ring struct {
	buffer Buffer
	head   uint64
	tail   uint64

	frames  []ringFrame
	current int // frames[current] is the slot EndFrame will record into
}

// NewRing creates a Ring over buf, retaining numFrames of allocation
// history.
func NewRing(buf Buffer, numFrames uint32) *Ring {
	return &Ring{buffer: buf, frames: make([]ringFrame, numFrames)}
}

// BeginFrame selects the slot for frameIndex, releases every frame's
// reservation whose frame number is already completed (≤ completedFrame),
// then advances the tail to the oldest offset still held by an active
// frame (or to head, if none remain active).
func (r *Ring) BeginFrame(frameIndex uint32, completedFrame uint64) {
	r.current = int(frameIndex) % len(r.frames)

	for i := range r.frames {
		if r.frames[i].frameNumber > 0 && r.frames[i].frameNumber <= completedFrame {
			r.frames[i].frameNumber = 0
		}
	}

	oldest := r.head
	foundActive := false
	for i := range r.frames {
		if r.frames[i].frameNumber > 0 {
			if !foundActive || r.frames[i].offset < oldest {
				oldest = r.frames[i].offset
				foundActive = true
			}
		}
	}
	if foundActive {
		r.tail = oldest
	} else {
		r.tail = r.head
	}
}

// EndFrame records the current head offset in the active slot, tagged
// with frameNumber, so a later BeginFrame can release it once that
// frame number has completed on the GPU.
func (r *Ring) EndFrame(frameNumber uint64) {
	r.frames[r.current] = ringFrame{frameNumber: frameNumber, offset: r.head}
}

// Allocate reserves size bytes aligned to align. If the aligned span
// would run past the end of the buffer, it wraps to offset 0 instead —
// failing only if doing so would still overrun tail (the oldest
// offset still in use by an unretired frame).
func (r *Ring) Allocate(size, align uint64) BufferAllocation {
	total := r.buffer.Size()
	aligned := alignUp(r.head, align)

	if aligned+size > total {
		aligned = 0
		if aligned+size > r.tail {
			return BufferAllocation{}
		}
	} else if r.head < r.tail && aligned+size > r.tail {
		return BufferAllocation{}
	}

	r.head = aligned + size
	return sliceAllocation(r.buffer, aligned, size)
}

// UsedSize returns the number of bytes currently reserved between tail
// and head, accounting for wraparound.
func (r *Ring) UsedSize() uint64 {
	if r.head >= r.tail {
		return r.head - r.tail
	}
	return r.buffer.Size() - r.tail + r.head
}

// TotalSize returns the backing buffer's full capacity.
func (r *Ring) TotalSize() uint64 { return r.buffer.Size() }
