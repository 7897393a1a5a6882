package platform

import "testing"

func TestGenericVirtualMemoryReserveRoundsUpToPageSize(t *testing.T) {
	vm := NewGenericVirtualMemory()
	pageSize := vm.Constants().PageSize

	r, err := vm.Reserve(1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Size() != pageSize {
		t.Fatalf("Size() = %d, want pageSize %d (rounded up from 1 byte)", r.Size(), pageSize)
	}
}

func TestGenericVirtualMemoryDecommitZeroesRange(t *testing.T) {
	vm := NewGenericVirtualMemory().(*genericVirtualMemory)
	r, err := vm.Reserve(vm.pageSize)
	if err != nil {
		t.Fatal(err)
	}
	gr := r.(*genericVirtualRange)
	for i := range gr.data {
		gr.data[i] = 0xFF
	}
	if err := vm.Decommit(r, 0, uint64(len(gr.data))); err != nil {
		t.Fatal(err)
	}
	for i, b := range gr.data {
		if b != 0 {
			t.Fatalf("byte %d = %#x after Decommit, want 0", i, b)
		}
	}
}

func TestGenericVirtualMemoryFreeClearsBacking(t *testing.T) {
	vm := NewGenericVirtualMemory()
	r, err := vm.Reserve(4096)
	if err != nil {
		t.Fatal(err)
	}
	if err := vm.Free(r); err != nil {
		t.Fatal(err)
	}
	if r.Size() != 0 {
		t.Fatalf("Size() after Free = %d, want 0", r.Size())
	}
}

func TestQueryCPUTopologyReportsNonZeroCores(t *testing.T) {
	topo := QueryCPUTopology()
	if topo.LogicalCores <= 0 {
		t.Fatalf("LogicalCores = %d, want > 0", topo.LogicalCores)
	}
	if topo.IsHybrid() {
		t.Fatal("generic topology never reports hybrid P/E masks")
	}
}
