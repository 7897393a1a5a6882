package alloc

import (
	"github.com/gogpu/rhi/resource"
)

type fakeBuffer struct {
	resource.Base
	size    uint64
	gpuBase uint64
	mapped  []byte
}

func (f *fakeBuffer) ReleaseGPU() {}

func newFakeBuffer(size uint64, mappable bool) *fakeBuffer {
	b := &fakeBuffer{size: size, gpuBase: 0x1000}
	b.Init(resource.KindBuffer, b)
	if mappable {
		b.mapped = make([]byte, size)
	}
	return b
}

func (f *fakeBuffer) Size() uint64        { return f.size }
func (f *fakeBuffer) GPUAddress() uint64  { return f.gpuBase }
func (f *fakeBuffer) Mapped() []byte      { return f.mapped }
