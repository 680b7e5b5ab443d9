// Package vfs provides a virtual file system abstraction.
//
// The VFS interface allows swapping the underlying file system implementation,
// enabling tests to run against an in-memory file system that can be told to
// fail specific operations. AtomicWriteFile builds crash-safe saves on top of
// any implementation.
package vfs

import (
	"io/fs"
	"time"
)

// VFS is a virtual file system abstraction.
type VFS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (FileInfo, error)

	// WriteFile writes data to a file, creating or truncating it.
	// Implementations must not return until the data is durable.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Remove removes a file.
	Remove(path string) error

	// Rename renames (moves) a file, replacing any existing target.
	// Implementations must not return until the rename is durable.
	Rename(oldPath, newPath string) error

	// EvalSymlinks returns path with any symbolic links resolved.
	// A path that does not exist returns an error matching fs.ErrNotExist.
	EvalSymlinks(path string) (string, error)

	// Dir returns the directory portion of a path.
	Dir(path string) string

	// Base returns the last element of a path.
	Base(path string) string

	// Join joins path elements.
	Join(elem ...string) string

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path, name string, size int64, mode fs.FileMode, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{
		path:    path,
		name:    name,
		size:    size,
		mode:    mode,
		modTime: modTime,
		isDir:   isDir,
	}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }
