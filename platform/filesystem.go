package platform

// FileHandle is an open file with explicit positioning, matching the
// source's IFileHandle rather than Go's io.ReadWriteSeeker so Tell/Size
// stay cheap metadata queries instead of Seek(0, io.SeekCurrent) calls.
type FileHandle interface {
	Tell() (int64, error)
	Seek(newPosition int64) error
	SeekFromEnd(offset int64) error
	Read(dest []byte) (int, error)
	Write(src []byte) (int, error)
	Flush() error
	Size() (int64, error)
	Close() error
}

// FileSystem is the filesystem trait the core depends on for readback
// captures, shader-binary caches, and diagnostic dumps, without naming a
// concrete OS filesystem implementation.
type FileSystem interface {
	FileExists(path string) bool
	DirectoryExists(path string) bool
	FileSize(path string) (int64, error)
	DeleteFile(path string) error
	MoveFile(to, from string) error
	CopyFile(to, from string) error
	CreateDirectory(path string) error
	DeleteDirectory(path string) error
	CreateDirectoryTree(path string) error
	OpenRead(path string) (FileHandle, error)
	OpenWrite(path string, appendTo bool) (FileHandle, error)
}
