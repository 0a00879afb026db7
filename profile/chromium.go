// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
)

// localState mirrors the slice of the Chromium "Local State" document we
// care about. Vendors drift on the rest of the schema, so everything else is
// ignored.
type localState struct {
	Profile struct {
		InfoCache map[string]json.RawMessage `json:"info_cache"`
		LastUsed  string                     `json:"last_used"`
	} `json:"profile"`
}

type infoCacheEntry struct {
	Name string `json:"name"`
}

// listChromium parses <configDir>/Local State. Individual entries that are
// malformed or missing a display name are skipped; only a document that
// fails to parse at all is an error.
func (s *Store) listChromium(configDir string) ([]Entry, error) {
	path := filepath.Join(configDir, "Local State")
	if !s.fs.Exists(path) {
		return nil, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var state localState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	defaultDir := state.Profile.LastUsed
	if defaultDir == "" {
		defaultDir = "Default"
	}

	dirs := make([]string, 0, len(state.Profile.InfoCache))
	for dir := range state.Profile.InfoCache {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var entries []Entry
	for _, dir := range dirs {
		var info infoCacheEntry
		if err := json.Unmarshal(state.Profile.InfoCache[dir], &info); err != nil || info.Name == "" {
			slog.Debug("skipping malformed profile entry", "file", path, "dir", dir)
			continue
		}
		entries = append(entries, Entry{
			Name:    info.Name,
			Dir:     dir,
			Default: dir == defaultDir,
		})
	}
	return entries, nil
}
