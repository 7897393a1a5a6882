package alloc

import "testing"

func TestDynamicBufferManagerAllocateVerticesAndIndices(t *testing.T) {
	upload := newFakeBuffer(4096, true)
	constant := newFakeBuffer(4096, true)
	d := NewDynamicBufferManager(upload, constant)
	d.BeginFrame(0, 0)

	vtx := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	va := d.AllocateVertices(vtx, 4)
	if !va.IsValid() || va.Size != 8 {
		t.Fatalf("unexpected vertex allocation: %+v", va)
	}
	for i, b := range vtx {
		if va.CPU[i] != b {
			t.Fatalf("vertex CPU[%d] = %d, want %d", i, va.CPU[i], b)
		}
	}

	idx16 := []uint16{1, 2, 3}
	ia16 := d.AllocateIndices16(idx16)
	if !ia16.IsValid() || ia16.Size != 6 {
		t.Fatalf("unexpected 16-bit index allocation: %+v", ia16)
	}
	if ia16.CPU[0] != 1 || ia16.CPU[1] != 0 || ia16.CPU[2] != 2 {
		t.Fatalf("unexpected little-endian encoding: %v", ia16.CPU)
	}

	idx32 := []uint32{0x01020304}
	ia32 := d.AllocateIndices32(idx32)
	if !ia32.IsValid() || ia32.Size != 4 {
		t.Fatalf("unexpected 32-bit index allocation: %+v", ia32)
	}
	if ia32.CPU[0] != 0x04 || ia32.CPU[3] != 0x01 {
		t.Fatalf("unexpected little-endian encoding: %v", ia32.CPU)
	}
}

func TestDynamicBufferManagerAllocateConstant(t *testing.T) {
	upload := newFakeBuffer(4096, true)
	constant := newFakeBuffer(4096, true)
	d := NewDynamicBufferManager(upload, constant)
	d.BeginFrame(0, 0)

	a := d.AllocateConstant(16)
	if !a.IsValid() || a.Size != 256 {
		t.Fatalf("expected constant allocation rounded up to 256, got %+v", a)
	}
}

func TestDynamicBufferManagerFrameLifecycleForwardsToBoth(t *testing.T) {
	upload := newFakeBuffer(1024, true)
	constant := newFakeBuffer(1024, true)
	d := NewDynamicBufferManager(upload, constant)

	d.BeginFrame(0, 0)
	_ = d.AllocateUpload(64, 1)
	_ = d.AllocateConstant(64)
	d.EndFrame(1)

	d.BeginFrame(1, 1)
	a := d.AllocateUpload(64, 1)
	b := d.AllocateConstant(64)
	if !a.IsValid() || !b.IsValid() {
		t.Fatal("expected both allocators to remain usable across a frame boundary")
	}
}
