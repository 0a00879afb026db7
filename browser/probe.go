// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/pathwayhq/pathway/fsys"
)

// PlatformProbe carries the per-OS knowledge of where browsers install their
// executables and their profile configuration files. One concrete probe
// exists per supported OS; NewProbe selects it once at startup so that no
// OS conditionals leak into discovery or planning logic.
type PlatformProbe interface {
	// OS returns the runtime.GOOS value this probe serves.
	OS() string

	// Detect returns the installed browsers this probe can find, in
	// deterministic candidate-table order (by family, then channel). Only
	// entries whose executable exists and is executable are returned.
	Detect(fs fsys.FileSystem) []Info

	// DefaultHandlerID queries the OS for the identity of the handler
	// registered for the http/https scheme (a bundle ID on macOS, a
	// .desktop entry on Linux). The second return is false when the OS
	// does not expose this or the query fails.
	DefaultHandlerID() (string, bool)

	// MatchHandler maps a handler identity from DefaultHandlerID back to a
	// detected browser installation.
	MatchHandler(fs fsys.FileSystem, id string) (Info, bool)

	// ChromiumConfigDir returns the directory holding the given Chromium
	// family browser's "Local State" file and profile directories.
	ChromiumConfigDir(kind Kind) (string, bool)

	// FirefoxConfigDir returns the directory holding the Firefox family's
	// profiles.ini.
	FirefoxConfigDir() (string, bool)
}

// NewProbe returns the probe for the current OS. Platforms outside the
// supported three get a probe that detects nothing, which downstream code
// treats as "defer to the system default handler".
func NewProbe() PlatformProbe {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return NewDarwinProbe(home)
	case "linux":
		return NewLinuxProbe(home)
	case "windows":
		return NewWindowsProbe(home)
	default:
		return nullProbe{}
	}
}

// runCommand abstracts exec.Command output capture so handler queries can be
// faked in tests.
type runCommand func(name string, args ...string) ([]byte, error)

func execOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

type nullProbe struct{}

func (nullProbe) OS() string                                     { return runtime.GOOS }
func (nullProbe) Detect(fsys.FileSystem) []Info                  { return nil }
func (nullProbe) DefaultHandlerID() (string, bool)               { return "", false }
func (nullProbe) MatchHandler(fsys.FileSystem, string) (Info, bool) { return Info{}, false }
func (nullProbe) ChromiumConfigDir(Kind) (string, bool)          { return "", false }
func (nullProbe) FirefoxConfigDir() (string, bool)               { return "", false }
