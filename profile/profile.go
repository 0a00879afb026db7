// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package profile

import "errors"

// ErrNotFound is returned when a profile named explicitly by the caller does
// not exist in the browser's configuration.
var ErrNotFound = errors.New("profile not found")

// Mode selects how the browser's user data is chosen for a launch.
type Mode string

const (
	// ModeNone uses the browser's default profile.
	ModeNone Mode = "none"
	// ModeNamed selects a profile by its display name.
	ModeNamed Mode = "named"
	// ModeCustomDir points the browser at a caller-supplied data directory.
	ModeCustomDir Mode = "custom-dir"
	// ModeTemporary creates a throwaway data directory for this launch.
	ModeTemporary Mode = "temporary"
	// ModeGuest uses the browser's built-in guest session.
	ModeGuest Mode = "guest"
)

// Descriptor is a fully resolved profile selection. Exactly one mode is
// active; resolution to a concrete directory happens before any launch
// arguments are built.
type Descriptor struct {
	Mode Mode `json:"mode"`
	// Name is the display name for ModeNamed.
	Name string `json:"name,omitempty"`
	// Dir is the resolved directory: the on-disk directory name for a named
	// Chromium profile, or an absolute path for custom and temporary modes.
	Dir string `json:"dir,omitempty"`
	// OwnsDir marks directories created by this process (ModeTemporary).
	OwnsDir bool `json:"owns_dir,omitempty"`
}

// None returns the default-profile descriptor.
func None() Descriptor { return Descriptor{Mode: ModeNone} }

// Entry is one profile from a browser's own configuration file.
type Entry struct {
	// Name is the human-facing display name.
	Name string `json:"name"`
	// Dir is the on-disk location: a directory name relative to the config
	// dir for Chromium, a resolved path for Firefox.
	Dir string `json:"dir"`
	// Default marks the profile the browser currently treats as default.
	Default bool `json:"default"`
}
