package vfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTempPath(t *testing.T) {
	m := NewMemFS()

	a := TempPath(m, "/dir/notes.txt")
	b := TempPath(m, "/dir/notes.txt")

	if a == b {
		t.Error("temp paths should be unique")
	}
	if m.Dir(a) != "/dir" {
		t.Errorf("temp file should be beside target, got %q", a)
	}
	if !strings.HasPrefix(m.Base(a), ".notes.txt.") || !strings.HasSuffix(a, ".tmp") {
		t.Errorf("unexpected temp name %q", a)
	}
}

func TestAtomicWriteFileCreates(t *testing.T) {
	m := NewMemFS()

	if err := AtomicWriteFile(m, "/new.txt", []byte("hello\n")); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}
	data, err := m.ReadFile("/new.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", data)
	}
	info, _ := m.Stat("/new.txt")
	if info.Mode() != DefaultFileMode {
		t.Errorf("expected default mode, got %v", info.Mode())
	}
	if files := m.Files(); len(files) != 1 {
		t.Errorf("expected only the target, got %v", files)
	}
}

func TestAtomicWriteFileReplacesAndKeepsMode(t *testing.T) {
	m := NewMemFS()
	if err := m.WriteFile("/f", []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(m, "/f", []byte("new")); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}
	data, _ := m.ReadFile("/f")
	if string(data) != "new" {
		t.Errorf("expected 'new', got %q", data)
	}
	info, _ := m.Stat("/f")
	if info.Mode() != 0600 {
		t.Errorf("expected mode 0600 preserved, got %v", info.Mode())
	}
}

func TestAtomicWriteFileFailures(t *testing.T) {
	injected := errors.New("injected")

	for _, op := range []Op{OpWrite, OpRename} {
		t.Run(string(op), func(t *testing.T) {
			m := NewMemFS()
			m.AddFile("/doc.txt", "original")
			m.FailOn(op, injected)

			err := AtomicWriteFile(m, "/doc.txt", []byte("changed"))
			if !errors.Is(err, injected) {
				t.Fatalf("expected injected error, got %v", err)
			}

			data, _ := m.ReadFile("/doc.txt")
			if string(data) != "original" {
				t.Errorf("target modified on failure: %q", data)
			}
			if files := m.Files(); len(files) != 1 || files[0] != "/doc.txt" {
				t.Errorf("temporary file left behind: %v", files)
			}
		})
	}
}

func TestAtomicWriteFileTargetIsDir(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/dir/x", "")

	err := AtomicWriteFile(m, "/dir", []byte("data"))
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected PathError, got %v", err)
	}
	if len(m.Files()) != 1 {
		t.Errorf("unexpected files: %v", m.Files())
	}
}

func TestAtomicWriteFileOS(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(target, []byte("before"), 0640); err != nil {
		t.Fatal(err)
	}

	osfs := NewOSFS()
	if err := AtomicWriteFile(osfs, target, []byte("after\n")); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "after\n" {
		t.Errorf("expected 'after\\n', got %q", data)
	}
	info, _ := os.Stat(target)
	if info.Mode().Perm() != 0640 {
		t.Errorf("expected mode 0640, got %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the target in %s, got %d entries", dir, len(entries))
	}
}

func TestAtomicWriteFileOSSymlink(t *testing.T) {
	dir := t.TempDir()
	realPath := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "link.txt")
	if err := os.WriteFile(realPath, []byte("x\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(realPath, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := AtomicWriteFile(NewOSFS(), link, []byte("Yx\n")); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}

	data, err := os.ReadFile(realPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Yx\n" {
		t.Errorf("expected link target to be rewritten, got %q", data)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("expected link to remain a symlink")
	}
	if st, _ := os.Stat(realPath); st.Mode().Perm() != 0600 {
		t.Errorf("expected target mode 0600, got %v", st.Mode().Perm())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("expected only real.txt and link.txt, got %d entries", len(entries))
	}
}

func TestAtomicWriteFileOSMissingDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "missing", "file.txt")

	if err := AtomicWriteFile(NewOSFS(), target, []byte("x")); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(target); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("target should not exist, got %v", err)
	}
}
