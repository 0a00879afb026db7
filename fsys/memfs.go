// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MemFS is an in-memory FileSystem for tests. Paths are stored with forward
// slashes; lookups normalize separators so tests written with slash paths
// behave the same on every host OS.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool
	exec  map[string]bool

	// FailWrites, when set, makes every write operation return
	// fs.ErrPermission. Used to simulate read-only filesystems.
	FailWrites bool
}

// NewMemFS returns an empty in-memory filesystem containing only the root
// directory.
func NewMemFS() *MemFS {
	return &MemFS{
		files: map[string][]byte{},
		dirs:  map[string]bool{"/": true},
		exec:  map[string]bool{},
	}
}

func normalize(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	p = filepath.ToSlash(filepath.Clean(p))
	return p
}

// AddFile adds a regular file and all parent directories.
func (m *MemFS) AddFile(path string, data []byte) {
	p := normalize(path)
	m.files[p] = data
	m.addParents(p)
}

// AddExecutable adds a file and marks it executable.
func (m *MemFS) AddExecutable(path string) {
	m.AddFile(path, nil)
	m.exec[normalize(path)] = true
}

// AddDir adds a directory and all parent directories.
func (m *MemFS) AddDir(path string) {
	p := normalize(path)
	m.dirs[p] = true
	m.addParents(p)
}

func (m *MemFS) addParents(p string) {
	for dir := filepath.ToSlash(filepath.Dir(p)); dir != "/" && dir != "."; dir = filepath.ToSlash(filepath.Dir(dir)) {
		m.dirs[dir] = true
	}
}

func (m *MemFS) Exists(path string) bool {
	p := normalize(path)
	_, isFile := m.files[p]
	return isFile || m.dirs[p]
}

func (m *MemFS) IsDir(path string) bool {
	return m.dirs[normalize(path)]
}

func (m *MemFS) IsExecutable(path string) bool {
	return m.exec[normalize(path)]
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[normalize(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return data, nil
}

func (m *MemFS) WriteFile(path string, data []byte, _ fs.FileMode) error {
	if m.FailWrites {
		return &fs.PathError{Op: "write", Path: path, Err: fs.ErrPermission}
	}
	m.AddFile(path, data)
	return nil
}

func (m *MemFS) MkdirAll(path string, _ fs.FileMode) error {
	if m.FailWrites {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrPermission}
	}
	m.AddDir(path)
	return nil
}

func (m *MemFS) Remove(path string) error {
	p := normalize(path)
	if _, ok := m.files[p]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(m.files, p)
	delete(m.exec, p)
	return nil
}
