package platform

import (
	"os"
	"runtime"
)

// genericFileSystem implements FileSystem on top of the Go standard
// library's os package, which is already OS-independent at the Go
// level — no concrete-backend translation is needed here the way hal's
// dx12/vulkan/metal boundary needs one.
type genericFileSystem struct{}

// NewGenericFileSystem returns the stdlib-backed FileSystem, the Go
// analogue of the source's GenericPlatformFile fallback.
func NewGenericFileSystem() FileSystem { return genericFileSystem{} }

func (genericFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (genericFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (genericFileSystem) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (genericFileSystem) DeleteFile(path string) error      { return os.Remove(path) }
func (genericFileSystem) MoveFile(to, from string) error    { return os.Rename(from, to) }
func (genericFileSystem) CreateDirectory(path string) error { return os.Mkdir(path, 0o755) }
func (genericFileSystem) DeleteDirectory(path string) error { return os.Remove(path) }
func (genericFileSystem) CreateDirectoryTree(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (genericFileSystem) CopyFile(to, from string) error {
	data, err := os.ReadFile(from)
	if err != nil {
		return err
	}
	return os.WriteFile(to, data, 0o644)
}

func (genericFileSystem) OpenRead(path string) (FileHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osFileHandle{f}, nil
}

func (genericFileSystem) OpenWrite(path string, appendTo bool) (FileHandle, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return &osFileHandle{f}, nil
}

type osFileHandle struct{ f *os.File }

func (h *osFileHandle) Tell() (int64, error)          { return h.f.Seek(0, os.SEEK_CUR) }
func (h *osFileHandle) Seek(pos int64) error           { _, err := h.f.Seek(pos, os.SEEK_SET); return err }
func (h *osFileHandle) SeekFromEnd(off int64) error    { _, err := h.f.Seek(off, os.SEEK_END); return err }
func (h *osFileHandle) Read(dest []byte) (int, error)  { return h.f.Read(dest) }
func (h *osFileHandle) Write(src []byte) (int, error)  { return h.f.Write(src) }
func (h *osFileHandle) Flush() error                   { return h.f.Sync() }
func (h *osFileHandle) Close() error                   { return h.f.Close() }
func (h *osFileHandle) Size() (int64, error) {
	info, err := h.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// genericVirtualMemory is the non-paging generic fallback: each
// reservation is backed immediately by a Go byte slice, so Commit and
// Decommit are bookkeeping only rather than real page-table operations.
// This mirrors the role GenericPlatformMemory plays relative to a real
// OS's VirtualAlloc/mmap-backed override: a portable but less precise
// stand-in, not a production paging implementation.
type genericVirtualMemory struct {
	pageSize uint64
}

// NewGenericVirtualMemory returns the non-paging generic VirtualMemory
// fallback, with constants reported at the OS's actual page size.
func NewGenericVirtualMemory() VirtualMemory {
	return &genericVirtualMemory{pageSize: uint64(os.Getpagesize())}
}

func (m *genericVirtualMemory) Constants() MemoryConstants {
	return MemoryConstants{
		PageSize:              m.pageSize,
		AllocationGranularity: m.pageSize,
		CacheLineSize:         64,
		NumberOfCores:         uint32(runtime.NumCPU()),
		NumberOfThreads:       uint32(runtime.GOMAXPROCS(0)),
	}
}

func (m *genericVirtualMemory) Stats() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryStats{
		UsedPhysical: ms.Sys,
		UsedVirtual:  ms.Sys,
	}
}

type genericVirtualRange struct{ data []byte }

func (r *genericVirtualRange) Size() uint64 { return uint64(len(r.data)) }

func (m *genericVirtualMemory) roundUp(size uint64) uint64 {
	if m.pageSize == 0 {
		return size
	}
	return (size + m.pageSize - 1) / m.pageSize * m.pageSize
}

func (m *genericVirtualMemory) Reserve(size uint64) (VirtualRange, error) {
	return &genericVirtualRange{data: make([]byte, m.roundUp(size))}, nil
}

func (m *genericVirtualMemory) Commit(VirtualRange, uint64, uint64) error { return nil }

func (m *genericVirtualMemory) Decommit(r VirtualRange, offset, size uint64) error {
	gr, ok := r.(*genericVirtualRange)
	if !ok {
		return nil
	}
	end := offset + size
	if end > uint64(len(gr.data)) {
		end = uint64(len(gr.data))
	}
	for i := offset; i < end; i++ {
		gr.data[i] = 0
	}
	return nil
}

func (m *genericVirtualMemory) Free(r VirtualRange) error {
	gr, ok := r.(*genericVirtualRange)
	if ok {
		gr.data = nil
	}
	return nil
}
