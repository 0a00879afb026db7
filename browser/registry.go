// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pathwayhq/pathway/fsys"
)

// ErrNotFound is returned when a browser named explicitly by the caller is
// not installed, or is not installed in the requested channel.
var ErrNotFound = errors.New("browser not found")

// Registry enumerates installed browsers using a PlatformProbe. It holds the
// detected set only for the lifetime of one invocation; nothing is persisted
// or cached across runs.
type Registry struct {
	fs    fsys.FileSystem
	probe PlatformProbe
}

// NewRegistry returns a registry reading through fs with the given probe.
func NewRegistry(fs fsys.FileSystem, probe PlatformProbe) *Registry {
	return &Registry{fs: fs, probe: probe}
}

// Detect returns the installed browsers in deterministic order (candidate
// table order: family, then channel). Duplicate installations resolving to
// the same executable are collapsed to the first hit.
func (r *Registry) Detect() []Info {
	seen := map[string]bool{}
	var out []Info
	for _, info := range r.probe.Detect(r.fs) {
		key := fmt.Sprintf("%s|%s|%s", info.Kind, info.Channel, info.Executable)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, info)
	}
	return out
}

// Resolve finds a detected browser by name. Matching is case-insensitive
// against the canonical token, aliases, display name, and kind name. If
// channel is a concrete track (not ChannelNone) only that track matches;
// a requested channel that is not installed yields ErrNotFound rather than
// a silent fallback to another channel.
func (r *Registry) Resolve(name string, channel Channel) (Info, error) {
	token := normalizeToken(name)
	if token == "" {
		return Info{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	for _, info := range r.Detect() {
		if channel != ChannelNone && info.Channel != channel {
			continue
		}
		if matchesToken(info, token) {
			return info, nil
		}
	}

	if channel != ChannelNone {
		return Info{}, fmt.Errorf("%w: %q (channel %s)", ErrNotFound, name, channel)
	}
	return Info{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// SystemDefault returns the browser currently registered as the OS handler
// for http/https. The second return is false when the OS query fails or the
// handler cannot be mapped to a detected installation.
func (r *Registry) SystemDefault() (Info, bool) {
	id, ok := r.probe.DefaultHandlerID()
	if !ok {
		return Info{}, false
	}
	return r.probe.MatchHandler(r.fs, id)
}

func matchesToken(info Info, token string) bool {
	if token == info.Token || token == string(info.Kind) {
		return true
	}
	if token == normalizeToken(info.DisplayName) {
		return true
	}
	if token == fmt.Sprintf("%s-%s", info.Kind, info.Channel) {
		return true
	}
	for _, alias := range info.Aliases {
		if token == alias {
			return true
		}
	}
	return false
}

func normalizeToken(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, " ", "-")
	t = strings.ReplaceAll(t, "_", "-")
	return t
}
