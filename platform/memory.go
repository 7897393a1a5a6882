package platform

import "fmt"

// MemoryStats is a snapshot of system memory usage. Values returned by
// VirtualMemory.Stats go stale immediately in a multithreaded process.
type MemoryStats struct {
	AvailablePhysical uint64
	AvailableVirtual  uint64
	UsedPhysical      uint64
	UsedVirtual       uint64
}

// MemoryConstants are fixed system memory facts, valid once queried.
type MemoryConstants struct {
	TotalPhysical         uint64
	PageSize              uint64
	AllocationGranularity uint64
	CacheLineSize         uint64
	NumberOfCores         uint32
	NumberOfThreads       uint32
}

// VirtualMemory reserves, commits, decommits, and frees page-granularity
// address ranges. A reservation carves out address space without backing
// it with physical memory; Commit backs a sub-range of a reservation.
type VirtualMemory interface {
	Constants() MemoryConstants
	Stats() MemoryStats

	// Reserve reserves size bytes of address space, rounded up to
	// AllocationGranularity, returning an opaque handle to the range.
	Reserve(size uint64) (VirtualRange, error)

	// Commit backs [offset, offset+size) of a reservation with physical
	// memory, rounded up to PageSize.
	Commit(r VirtualRange, offset, size uint64) error

	// Decommit releases the physical backing of [offset, offset+size)
	// without freeing the address-space reservation.
	Decommit(r VirtualRange, offset, size uint64) error

	// Free releases a reservation in full, decommitting any committed
	// pages within it first.
	Free(r VirtualRange) error
}

// VirtualRange identifies a reserved address range. Opaque to callers;
// a concrete VirtualMemory implementation defines what it actually holds.
type VirtualRange interface {
	Size() uint64
}

// ErrOutOfAddressSpace is returned by Reserve when the OS cannot satisfy
// the requested reservation size.
var ErrOutOfAddressSpace = fmt.Errorf("platform: out of address space")
