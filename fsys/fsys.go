// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// FileSystem is the filesystem surface used by browser and profile discovery.
// It exists so discovery logic can run against a fake filesystem in tests.
type FileSystem interface {
	// Exists reports whether path exists (file or directory).
	Exists(path string) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// IsExecutable reports whether path exists and is executable by the
	// current user. On Windows existence is sufficient.
	IsExecutable(path string) bool

	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating the file if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// MkdirAll creates the directory at path along with any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes the file at path.
	Remove(path string) error
}

// OS is the production FileSystem backed by the os package.
type OS struct{}

// NewOS returns a FileSystem backed by the host filesystem.
func NewOS() OS { return OS{} }

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OS) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Clean(path))
}

func (OS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}
