// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package launch

import (
	"fmt"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/profile"
)

// WindowOptions are the window-mode flags of a launch request. Pure flags
// with no ordering dependency between them.
type WindowOptions struct {
	NewWindow bool `json:"new_window"`
	Incognito bool `json:"incognito"`
	Kiosk     bool `json:"kiosk"`
}

func (w WindowOptions) any() bool {
	return w.NewWindow || w.Incognito || w.Kiosk
}

// ProfileRequest is the raw, pre-resolution profile selection. More than one
// field may be set by the caller; the planner picks a winner by precedence.
type ProfileRequest struct {
	// Named is a profile display name, empty when unset.
	Named string
	// CustomDir points the browser at a caller-supplied data directory.
	CustomDir string
	// Temporary requests a throwaway data directory for this launch.
	Temporary bool
	// Guest requests the browser's built-in guest session.
	Guest bool
}

func (p ProfileRequest) any() bool {
	return p.Named != "" || p.CustomDir != "" || p.Temporary || p.Guest
}

// Request is the planner's input.
type Request struct {
	// Browser is the resolved target. Nil means no browser could be
	// resolved and the plan defers to the operating system's default
	// handler.
	Browser *browser.Info
	Profile ProfileRequest
	Window  WindowOptions
	URLs    []string
}

// Plan is the fully resolved, ready-to-execute description of a launch.
// Immutable once produced. Args holds the flag portion only; the launcher
// appends one URL per spawned process, so the flags are identical for every
// URL in a batch.
type Plan struct {
	Executable        string             `json:"executable,omitempty"`
	Args              []string           `json:"args,omitempty"`
	URLs              []string           `json:"urls"`
	Warnings          []string           `json:"warnings,omitempty"`
	UsesSystemDefault bool               `json:"uses_system_default"`
	Browser           *browser.Info      `json:"browser,omitempty"`
	Profile           profile.Descriptor `json:"profile"`
	Window            WindowOptions      `json:"window"`
}

func (p *Plan) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}
