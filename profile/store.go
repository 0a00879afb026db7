// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/fsys"
)

// Store reads browser profile configuration and manages profile directories.
type Store struct {
	fs      fsys.FileSystem
	probe   browser.PlatformProbe
	tempDir string
}

// NewStore returns a store reading through fs with per-OS config locations
// supplied by probe.
func NewStore(fs fsys.FileSystem, probe browser.PlatformProbe) *Store {
	return &Store{fs: fs, probe: probe, tempDir: os.TempDir()}
}

// List returns the profiles the given browser's configuration file declares,
// in stable order. A missing configuration file is a normal state (the
// browser has never run) and yields an empty list, not an error. Browsers
// without named-profile support always yield an empty list.
func (s *Store) List(b browser.Info) ([]Entry, error) {
	switch b.Family() {
	case browser.FamilyChromium:
		dir, ok := s.probe.ChromiumConfigDir(b.Kind)
		if !ok {
			return nil, nil
		}
		return s.listChromium(dir)
	case browser.FamilyFirefox:
		dir, ok := s.probe.FirefoxConfigDir()
		if !ok {
			return nil, nil
		}
		return s.listFirefox(dir)
	default:
		return nil, nil
	}
}

// ResolveNamed maps a profile display name to its on-disk identity: exact
// match first, case-insensitive fallback second, with the configuration's
// directory names accepted alongside display names. It never guesses; an
// unmatched name is ErrNotFound.
func (s *Store) ResolveNamed(b browser.Info, name string) (Entry, error) {
	entries, err := s.List(b)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Name == name || e.Dir == name {
			return e, nil
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) || strings.EqualFold(e.Dir, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q for %s", ErrNotFound, name, b.DisplayName)
}

// CreateTemporary allocates a fresh, empty profile directory under the OS
// temporary area. Uniqueness comes from the random name, not a lock, so two
// concurrent invocations cannot collide. The caller owns eventual cleanup;
// this method never deletes anything.
func (s *Store) CreateTemporary() (string, error) {
	dir := filepath.Join(s.tempDir, "pathway-profile-"+uuid.NewString())
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create temporary profile: %w", err)
	}
	return dir, nil
}

// PrepareCustomDir validates a caller-supplied profile directory: the path
// must not contain traversal segments, is created if absent, and must be
// writable. Returns the cleaned absolute path.
func (s *Store) PrepareCustomDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("custom profile directory: empty path")
	}
	if containsTraversal(path) {
		return "", fmt.Errorf("custom profile directory %q: path traversal rejected", path)
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("custom profile directory %q: %w", path, err)
	}

	if !s.fs.Exists(abs) {
		if err := s.fs.MkdirAll(abs, 0o700); err != nil {
			return "", fmt.Errorf("create custom profile directory %q: %w", abs, err)
		}
	} else if !s.fs.IsDir(abs) {
		return "", fmt.Errorf("custom profile directory %q: not a directory", abs)
	}

	// Probe writability up front; the browser gives much worse errors later.
	probe := filepath.Join(abs, ".pathway-write-test")
	if err := s.fs.WriteFile(probe, nil, 0o600); err != nil {
		return "", fmt.Errorf("custom profile directory %q not writable: %w", abs, err)
	}
	_ = s.fs.Remove(probe)

	return abs, nil
}

func containsTraversal(path string) bool {
	p := strings.ToLower(path)
	if strings.Contains(p, "%2e%2e") {
		return true
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
