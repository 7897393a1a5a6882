package alloc

import "encoding/binary"

// uploadRingFrames is the fixed triple-buffering depth the dynamic
// manager's upload ring uses, matching RHIDynamicBufferManager's
// hardcoded 3.
const uploadRingFrames = 3

// DynamicBufferManager composes an upload ring allocator and a
// constant-buffer allocator behind one frame lifecycle and typed
// helpers for vertex, index, and constant data (spec.md §4.9, grounded
// on RHIDynamicBufferManager).
type DynamicBufferManager struct {
	upload   *Ring
	constant *ConstantBufferAllocator
}

// NewDynamicBufferManager creates a manager over separate upload and
// constant-buffer backing buffers.
func NewDynamicBufferManager(uploadBuf, constantBuf Buffer) *DynamicBufferManager {
	return &DynamicBufferManager{
		upload:   NewRing(uploadBuf, uploadRingFrames),
		constant: NewConstantBufferAllocator(constantBuf),
	}
}

// BeginFrame forwards to both underlying allocators.
func (d *DynamicBufferManager) BeginFrame(frameIndex uint32, completedFrame uint64) {
	d.upload.BeginFrame(frameIndex, completedFrame)
	d.constant.BeginFrame(frameIndex)
}

// EndFrame forwards to both underlying allocators.
func (d *DynamicBufferManager) EndFrame(frameNumber uint64) {
	d.upload.EndFrame(frameNumber)
	d.constant.EndFrame()
}

// AllocateUpload reserves a generic upload span.
func (d *DynamicBufferManager) AllocateUpload(size, align uint64) BufferAllocation {
	return d.upload.Allocate(size, align)
}

// AllocateConstant reserves and 256-byte-aligns a constant-buffer span.
func (d *DynamicBufferManager) AllocateConstant(size uint64) BufferAllocation {
	return d.constant.Allocate(size)
}

// AllocateConstantAndWrite reserves a constant-buffer span sized to data
// and writes it in immediately.
func (d *DynamicBufferManager) AllocateConstantAndWrite(data []byte) BufferAllocation {
	return d.constant.AllocateAndWrite(data)
}

// AllocateVertices reserves and writes vertexSize*count bytes of vertex
// data, aligned to vertexSize.
func (d *DynamicBufferManager) AllocateVertices(data []byte, vertexSize uint64) BufferAllocation {
	a := d.upload.Allocate(uint64(len(data)), vertexSize)
	if a.IsValid() {
		a.Write(data)
	}
	return a
}

// AllocateIndices16 reserves and writes a uint16 index buffer.
func (d *DynamicBufferManager) AllocateIndices16(indices []uint16) BufferAllocation {
	raw := make([]byte, len(indices)*2)
	for i, x := range indices {
		binary.LittleEndian.PutUint16(raw[i*2:], x)
	}
	a := d.upload.Allocate(uint64(len(raw)), 2)
	if a.IsValid() {
		a.Write(raw)
	}
	return a
}

// AllocateIndices32 reserves and writes a uint32 index buffer.
func (d *DynamicBufferManager) AllocateIndices32(indices []uint32) BufferAllocation {
	raw := make([]byte, len(indices)*4)
	for i, x := range indices {
		binary.LittleEndian.PutUint32(raw[i*4:], x)
	}
	a := d.upload.Allocate(uint64(len(raw)), 4)
	if a.IsValid() {
		a.Write(raw)
	}
	return a
}
