package vfs

import (
	"io/fs"
	"path"
	"sort"
	"syscall"
	"time"
)

// Standard error values for MemFS operations.
// These align with POSIX errors for consistency with OSFS.
var errIsDir = syscall.EISDIR

// Op names a MemFS operation for fault injection.
type Op string

// Operations that can be made to fail.
const (
	OpRead   Op = "read"
	OpWrite  Op = "write"
	OpRename Op = "rename"
	OpRemove Op = "remove"
)

// MemFS implements VFS using an in-memory file system.
// It is primarily used for testing: FailOn makes individual operations
// return an error so that failure paths can be exercised deterministically.
//
// MemFS is not safe for concurrent use.
type MemFS struct {
	files  map[string]*memFile
	dirs   map[string]bool
	faults map[Op]error
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system containing only "/".
func NewMemFS() *MemFS {
	return &MemFS{
		files:  make(map[string]*memFile),
		dirs:   map[string]bool{"/": true},
		faults: make(map[Op]error),
	}
}

// Ensure MemFS implements VFS.
var _ VFS = (*MemFS)(nil)

// FailOn makes every subsequent op return err. A nil err clears the fault.
func (m *MemFS) FailOn(op Op, err error) {
	if err == nil {
		delete(m.faults, op)
		return
	}
	m.faults[op] = err
}

// fault returns the injected error for op wrapped as a path error, if any.
func (m *MemFS) fault(op Op, filePath string) error {
	if err, ok := m.faults[op]; ok {
		return &fs.PathError{Op: string(op), Path: filePath, Err: err}
	}
	return nil
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	filePath = m.cleanPath(filePath)
	if err := m.fault(OpRead, filePath); err != nil {
		return nil, err
	}

	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (FileInfo, error) {
	filePath = m.cleanPath(filePath)

	if f, ok := m.files[filePath]; ok {
		return NewFileInfo(filePath, path.Base(filePath), int64(len(f.content)), f.mode, f.modTime, false), nil
	}
	if m.dirs[filePath] {
		return NewFileInfo(filePath, path.Base(filePath), 0, fs.ModeDir|0755, time.Time{}, true), nil
	}
	return FileInfo{}, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// WriteFile writes data to a file, creating it if necessary.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	filePath = m.cleanPath(filePath)
	if err := m.fault(OpWrite, filePath); err != nil {
		return err
	}

	// Check if path is a directory
	if m.dirs[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: errIsDir}
	}

	// Ensure parent directory exists
	if dir := path.Dir(filePath); !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: filePath, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[filePath] = &memFile{content: content, mode: perm, modTime: time.Now()}
	return nil
}

// Remove removes a file.
func (m *MemFS) Remove(filePath string) error {
	filePath = m.cleanPath(filePath)
	if err := m.fault(OpRemove, filePath); err != nil {
		return err
	}
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// Rename moves a file, replacing any existing file at newPath.
func (m *MemFS) Rename(oldPath, newPath string) error {
	oldPath = m.cleanPath(oldPath)
	newPath = m.cleanPath(newPath)
	if err := m.fault(OpRename, oldPath); err != nil {
		return err
	}

	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if m.dirs[newPath] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: errIsDir}
	}
	if !m.dirs[path.Dir(newPath)] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// EvalSymlinks returns the cleaned path. MemFS has no symbolic links.
func (m *MemFS) EvalSymlinks(filePath string) (string, error) {
	filePath = m.cleanPath(filePath)
	if !m.Exists(filePath) {
		return "", &fs.PathError{Op: "lstat", Path: filePath, Err: fs.ErrNotExist}
	}
	return filePath, nil
}

// Dir returns the directory portion of a path.
func (m *MemFS) Dir(filePath string) string {
	return path.Dir(m.cleanPath(filePath))
}

// Base returns the last element of a path.
func (m *MemFS) Base(filePath string) string {
	return path.Base(filePath)
}

// Join joins path elements.
func (m *MemFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	filePath = m.cleanPath(filePath)
	_, isFile := m.files[filePath]
	return isFile || m.dirs[filePath]
}

// AddFile creates a file and any missing parent directories.
func (m *MemFS) AddFile(filePath string, content string) {
	filePath = m.cleanPath(filePath)
	for dir := path.Dir(filePath); !m.dirs[dir]; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
	m.files[filePath] = &memFile{content: []byte(content), mode: 0644, modTime: time.Now()}
}

// Files returns all file paths, sorted.
func (m *MemFS) Files() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// cleanPath normalizes a path to an absolute, slash-separated form.
func (m *MemFS) cleanPath(p string) string {
	if !path.IsAbs(p) {
		p = "/" + p
	}
	return path.Clean(p)
}
