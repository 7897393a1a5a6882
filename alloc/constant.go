package alloc

// CBVAlignment is the mandatory alignment for constant-buffer views.
const CBVAlignment = 256

// constantBufferFrames is the fixed triple-buffering depth constant
// buffers use, matching RHIConstantBufferAllocator's hardcoded 3.
const constantBufferFrames = 3

// ConstantBufferAllocator is a Ring forced to 256-byte alignment and
// triple-buffered (spec.md §4.9, grounded on RHIConstantBufferAllocator).
type ConstantBufferAllocator struct {
	ring         *Ring
	currentFrame uint32
}

// NewConstantBufferAllocator creates a triple-buffered constant-buffer
// allocator over buf.
func NewConstantBufferAllocator(buf Buffer) *ConstantBufferAllocator {
	return &ConstantBufferAllocator{ring: NewRing(buf, constantBufferFrames)}
}

// BeginFrame advances the underlying ring, treating the previous frame
// index as completed (matching the original's BeginFrame(frameIndex,
// frameIndex>0 ? frameIndex-1 : 0) shortcut for callers with no
// independent completed-fence tracking of their own).
func (c *ConstantBufferAllocator) BeginFrame(frameIndex uint32) {
	c.currentFrame = frameIndex
	completed := uint64(0)
	if frameIndex > 0 {
		completed = uint64(frameIndex) - 1
	}
	c.ring.BeginFrame(frameIndex, completed)
}

// EndFrame records the current frame's reservation in the ring.
func (c *ConstantBufferAllocator) EndFrame() {
	c.ring.EndFrame(uint64(c.currentFrame))
}

// Allocate rounds size up to CBVAlignment and reserves it in the ring.
func (c *ConstantBufferAllocator) Allocate(size uint64) BufferAllocation {
	aligned := alignUp(size, CBVAlignment)
	return c.ring.Allocate(aligned, CBVAlignment)
}

// AllocateAndWrite allocates space for data and copies it in, returning
// the invalid zero-value allocation without writing if the allocation
// itself failed.
func (c *ConstantBufferAllocator) AllocateAndWrite(data []byte) BufferAllocation {
	a := c.Allocate(uint64(len(data)))
	if a.IsValid() {
		a.Write(data)
	}
	return a
}
