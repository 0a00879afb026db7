// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMemFSFilesAndDirs(t *testing.T) {
	m := NewMemFS()

	m.AddFile("/home/user/.config/app/state.json", []byte(`{}`))

	if !m.Exists("/home/user/.config/app/state.json") {
		t.Error("added file should exist")
	}
	if !m.IsDir("/home/user/.config/app") {
		t.Error("parent directory should exist")
	}
	if m.IsDir("/home/user/.config/app/state.json") {
		t.Error("file should not be a directory")
	}

	data, err := m.ReadFile("/home/user/.config/app/state.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("ReadFile = %q, want %q", data, `{}`)
	}

	if _, err := m.ReadFile("/nope"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestMemFSExecutable(t *testing.T) {
	m := NewMemFS()
	m.AddExecutable("/usr/bin/firefox")
	m.AddFile("/usr/share/doc/readme", nil)

	if !m.IsExecutable("/usr/bin/firefox") {
		t.Error("executable file should report executable")
	}
	if m.IsExecutable("/usr/share/doc/readme") {
		t.Error("plain file should not report executable")
	}
}

func TestMemFSWindowsSeparators(t *testing.T) {
	m := NewMemFS()
	m.AddExecutable(`C:\Program Files\Google\Chrome\Application\chrome.exe`)

	if !m.Exists("C:/Program Files/Google/Chrome/Application/chrome.exe") {
		t.Error("backslash and slash paths should resolve to the same entry")
	}
}

func TestMemFSFailWrites(t *testing.T) {
	m := NewMemFS()
	m.FailWrites = true

	if err := m.MkdirAll("/tmp/x", 0o755); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("MkdirAll error = %v, want ErrPermission", err)
	}
	if err := m.WriteFile("/tmp/x/f", nil, 0o644); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("WriteFile error = %v, want ErrPermission", err)
	}
}

func TestOSExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mode bits are not meaningful on Windows")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(plain, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	osfs := NewOS()
	if !osfs.IsExecutable(script) {
		t.Error("0755 file should be executable")
	}
	if osfs.IsExecutable(plain) {
		t.Error("0644 file should not be executable")
	}
	if osfs.IsExecutable(dir) {
		t.Error("directory should not report executable")
	}
}
