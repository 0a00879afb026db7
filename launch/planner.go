// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package launch

import (
	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/profile"
)

// ProfileSource resolves profile selections to concrete directories.
// *profile.Store satisfies it.
type ProfileSource interface {
	ResolveNamed(b browser.Info, name string) (profile.Entry, error)
	CreateTemporary() (string, error)
	PrepareCustomDir(path string) (string, error)
}

// Planner compiles launch requests into plans.
type Planner struct {
	profiles ProfileSource
}

func NewPlanner(profiles ProfileSource) *Planner {
	return &Planner{profiles: profiles}
}

// Plan resolves a request into an executable plan. Option conflicts and
// capability mismatches never fail: they degrade to warnings on the plan.
// The only fatal outcomes are a named profile that does not exist and an
// I/O failure preparing a profile directory, because launching with the
// wrong profile silently is worse than not launching.
func (p *Planner) Plan(req Request) (Plan, error) {
	plan := Plan{URLs: req.URLs, Profile: profile.None()}

	if req.Browser == nil {
		plan.UsesSystemDefault = true
		if req.Profile.any() || req.Window.any() {
			plan.warnf("profile and window options cannot be applied when deferring to the system default browser")
		}
		return plan, nil
	}

	b := *req.Browser
	plan.Browser = req.Browser
	caps := b.Capabilities()
	win := req.Window

	mode := p.selectMode(&plan, req.Profile)
	mode = p.gateMode(&plan, b, caps, mode, &win)

	// Incognito and profile selection are mutually exclusive at the
	// argument level. Guest sits above incognito in the precedence order,
	// so it survives; every other selection yields to incognito.
	if win.Incognito && caps.Incognito {
		switch mode {
		case profile.ModeNamed, profile.ModeCustomDir, profile.ModeTemporary:
			plan.warnf("profile selection ignored: incognito window requested")
			mode = profile.ModeNone
		case profile.ModeGuest:
			plan.warnf("incognito request ignored: guest session takes precedence")
			win.Incognito = false
		}
	}

	desc, err := p.resolveDescriptor(b, mode, req.Profile)
	if err != nil {
		return Plan{}, err
	}
	plan.Profile = desc

	if win.NewWindow && !caps.NewWindow {
		plan.warnf("%s does not support opening a new window", b.DisplayName)
		win.NewWindow = false
	}
	if win.Incognito && !caps.Incognito {
		plan.warnf("%s does not support incognito windows", b.DisplayName)
		win.Incognito = false
	}
	if win.Kiosk && !caps.Kiosk {
		plan.warnf("%s does not support kiosk mode", b.DisplayName)
		win.Kiosk = false
	}
	plan.Window = win

	plan.Executable, plan.Args = buildArgs(b, desc, win)
	return plan, nil
}

// selectMode applies the profile precedence order guest > temporary >
// custom directory > named, warning for every lower-precedence request
// that loses.
func (p *Planner) selectMode(plan *Plan, req ProfileRequest) profile.Mode {
	ordered := []struct {
		mode profile.Mode
		set  bool
	}{
		{profile.ModeGuest, req.Guest},
		{profile.ModeTemporary, req.Temporary},
		{profile.ModeCustomDir, req.CustomDir != ""},
		{profile.ModeNamed, req.Named != ""},
	}

	winner := profile.ModeNone
	for _, r := range ordered {
		if !r.set {
			continue
		}
		if winner == profile.ModeNone {
			winner = r.mode
			continue
		}
		plan.warnf("ignoring %s profile request: %s takes precedence", r.mode, winner)
	}
	return winner
}

// gateMode downgrades a profile mode the browser cannot express. Firefox
// has no guest session but its private window is the closest equivalent,
// so guest substitutes to incognito there.
func (p *Planner) gateMode(plan *Plan, b browser.Info, caps browser.Capabilities, mode profile.Mode, win *WindowOptions) profile.Mode {
	switch mode {
	case profile.ModeGuest:
		if caps.Guest {
			return mode
		}
		if b.Family() == browser.FamilyFirefox {
			plan.warnf("%s has no guest mode; opening a private window instead", b.DisplayName)
			win.Incognito = true
		} else {
			plan.warnf("%s does not support guest sessions; using the default profile", b.DisplayName)
		}
	case profile.ModeTemporary:
		if caps.TempProfile {
			return mode
		}
		plan.warnf("%s does not support temporary profiles; using the default profile", b.DisplayName)
	case profile.ModeCustomDir:
		if caps.CustomUserDir {
			return mode
		}
		plan.warnf("%s does not support a custom profile directory; using the default profile", b.DisplayName)
	case profile.ModeNamed:
		if caps.NamedProfile {
			return mode
		}
		plan.warnf("%s does not support named profiles; using the default profile", b.DisplayName)
	default:
		return mode
	}
	return profile.ModeNone
}

// resolveDescriptor turns the surviving mode into a concrete profile
// identity. Resolution happens only after conflict handling so a launch
// that ultimately ignores its profile selection never creates directories.
func (p *Planner) resolveDescriptor(b browser.Info, mode profile.Mode, req ProfileRequest) (profile.Descriptor, error) {
	switch mode {
	case profile.ModeNamed:
		entry, err := p.profiles.ResolveNamed(b, req.Named)
		if err != nil {
			return profile.Descriptor{}, err
		}
		return profile.Descriptor{Mode: profile.ModeNamed, Name: entry.Name, Dir: entry.Dir}, nil
	case profile.ModeCustomDir:
		dir, err := p.profiles.PrepareCustomDir(req.CustomDir)
		if err != nil {
			return profile.Descriptor{}, err
		}
		return profile.Descriptor{Mode: profile.ModeCustomDir, Dir: dir}, nil
	case profile.ModeTemporary:
		dir, err := p.profiles.CreateTemporary()
		if err != nil {
			return profile.Descriptor{}, err
		}
		return profile.Descriptor{Mode: profile.ModeTemporary, Dir: dir, OwnsDir: true}, nil
	case profile.ModeGuest:
		return profile.Descriptor{Mode: profile.ModeGuest}, nil
	default:
		return profile.None(), nil
	}
}

// buildArgs translates the resolved triple into the browser family's
// argument vocabulary. The capability gates above guarantee every feature
// reaching this point is expressible, so this is a pure mapping.
func buildArgs(b browser.Info, desc profile.Descriptor, win WindowOptions) (string, []string) {
	var args []string

	switch b.Family() {
	case browser.FamilyChromium:
		switch desc.Mode {
		case profile.ModeNamed:
			args = append(args, "--profile-directory="+desc.Dir)
		case profile.ModeCustomDir, profile.ModeTemporary:
			args = append(args, "--user-data-dir="+desc.Dir)
		case profile.ModeGuest:
			args = append(args, "--guest")
		}
		if win.Incognito {
			args = append(args, "--incognito")
		}
		if win.NewWindow {
			args = append(args, "--new-window")
		}
		if win.Kiosk {
			args = append(args, "--kiosk")
		}
		return b.Executable, args

	case browser.FamilyFirefox:
		switch desc.Mode {
		case profile.ModeNamed:
			args = append(args, "-P", desc.Name)
		case profile.ModeCustomDir, profile.ModeTemporary:
			args = append(args, "-profile", desc.Dir)
		}
		if win.Incognito {
			args = append(args, "--private-window")
		}
		if win.NewWindow {
			args = append(args, "--new-window")
		}
		if win.Kiosk {
			args = append(args, "--kiosk")
		}
		return b.Executable, args

	case browser.FamilySafari:
		// Safari is driven through LaunchServices rather than its raw
		// executable path.
		bundle := b.BundleID
		if bundle == "" {
			bundle = "com.apple.Safari"
		}
		args = append(args, "-b", bundle)
		if win.NewWindow {
			args = append(args, "-n")
		}
		return "open", args

	default:
		return b.Executable, nil
	}
}
