// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package profile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// listFirefox parses <configDir>/profiles.ini. Sections that do not declare
// both Name and Path are skipped; anything outside [ProfileN] sections
// (installs, general) is ignored.
func (s *Store) listFirefox(configDir string) ([]Entry, error) {
	path := filepath.Join(configDir, "profiles.ini")
	if !s.fs.Exists(path) {
		return nil, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []Entry
	var section map[string]string

	flush := func() {
		if section == nil {
			return
		}
		if e, ok := firefoxEntry(section, configDir); ok {
			entries = append(entries, e)
		}
		section = nil
	}

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			flush()
			if strings.HasPrefix(line, "[Profile") {
				section = map[string]string{}
			}
		case section != nil:
			if key, value, ok := strings.Cut(line, "="); ok {
				section[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		}
	}
	flush()

	return entries, nil
}

func firefoxEntry(section map[string]string, configDir string) (Entry, bool) {
	name := section["Name"]
	path := section["Path"]
	if name == "" || path == "" {
		return Entry{}, false
	}

	// IsRelative defaults to 1 when absent, matching Firefox itself.
	if section["IsRelative"] != "0" {
		path = filepath.Join(configDir, path)
	}

	return Entry{
		Name:    name,
		Dir:     path,
		Default: section["Default"] == "1",
	}, true
}
