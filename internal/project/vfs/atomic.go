package vfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
)

// DefaultFileMode is used when the target file does not exist yet.
const DefaultFileMode fs.FileMode = 0644

// TempPath returns a unique temporary path in the same directory as target.
// Keeping the temporary file beside the target keeps the final rename on one
// file system, where rename(2) is atomic.
func TempPath(fsys VFS, target string) string {
	name := fmt.Sprintf(".%s.%s.tmp", fsys.Base(target), uuid.NewString())
	return fsys.Join(fsys.Dir(target), name)
}

// AtomicWriteFile replaces target with data so that readers observe either
// the old content or the new content, never a partial write.
//
// The data is written to a temporary file beside target which is then
// renamed onto target. If the write fails no rename is attempted; if either
// step fails the temporary file is removed and target is left untouched.
// An existing target's permission bits are preserved. When target is a
// symbolic link the file it points to is replaced and the link is kept.
func AtomicWriteFile(fsys VFS, target string, data []byte) error {
	target, err := resolveTarget(fsys, target)
	if err != nil {
		return err
	}

	perm := DefaultFileMode
	if info, err := fsys.Stat(target); err == nil {
		if info.IsDir() {
			return &fs.PathError{Op: "save", Path: target, Err: errIsDir}
		}
		perm = info.Mode().Perm()
	}

	tmp := TempPath(fsys, target)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		cleanup(fsys, tmp)
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err := fsys.Rename(tmp, target); err != nil {
		cleanup(fsys, tmp)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

// resolveTarget follows symbolic links in target. A target that does not
// exist yet is returned as given.
func resolveTarget(fsys VFS, target string) (string, error) {
	resolved, err := fsys.EvalSymlinks(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return target, nil
		}
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	return resolved, nil
}

// cleanup removes a leftover temporary file. Errors are ignored because the
// file may never have been created.
func cleanup(fsys VFS, tmp string) {
	if fsys.Exists(tmp) {
		_ = fsys.Remove(tmp)
	}
}
