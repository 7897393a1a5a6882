package alloc

// Linear is a bump-pointer allocator over a single backing buffer
// (spec.md §4.9, grounded on RHILinearBufferAllocator). Allocate rounds
// the current offset up to the requested alignment, fails if the
// aligned span would run past the buffer, and otherwise advances the
// offset past it. Reset rewinds to zero, typically at frame end — used
// when the entire scratch region is released together.
type Linear struct {
	buffer Buffer
	offset uint64
}

// NewLinear creates a Linear allocator over buf's full size.
func NewLinear(buf Buffer) *Linear {
	return &Linear{buffer: buf}
}

// Allocate reserves size bytes aligned to align (a power of two, or 0
// for byte alignment). Returns an invalid BufferAllocation if it does
// not fit.
func (l *Linear) Allocate(size, align uint64) BufferAllocation {
	aligned := alignUp(l.offset, align)
	if aligned+size > l.buffer.Size() {
		return BufferAllocation{}
	}
	l.offset = aligned + size
	return sliceAllocation(l.buffer, aligned, size)
}

// Reset rewinds the allocator to the start of the buffer.
func (l *Linear) Reset() {
	l.offset = 0
}

// UsedSize returns the number of bytes allocated since the last Reset.
func (l *Linear) UsedSize() uint64 { return l.offset }

// RemainingSize returns the number of bytes still available.
func (l *Linear) RemainingSize() uint64 { return l.buffer.Size() - l.offset }

// sliceAllocation builds a BufferAllocation for [offset, offset+size)
// of buf, deriving the CPU pointer and GPU address from the buffer's
// base values.
func sliceAllocation(buf Buffer, offset, size uint64) BufferAllocation {
	a := BufferAllocation{
		Buffer:     buf,
		Offset:     offset,
		Size:       size,
		GPUAddress: buf.GPUAddress() + offset,
	}
	if mapped := buf.Mapped(); mapped != nil {
		a.CPU = mapped[offset : offset+size]
	}
	return a
}
