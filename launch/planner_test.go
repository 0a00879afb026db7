// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package launch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/fsys"
	"github.com/pathwayhq/pathway/profile"
)

var (
	chromeInfo = browser.Info{
		Kind: browser.KindChrome, Channel: browser.ChannelStable,
		DisplayName: "Google Chrome", Executable: "/usr/bin/google-chrome", Token: "chrome",
	}
	firefoxInfo = browser.Info{
		Kind: browser.KindFirefox, Channel: browser.ChannelStable,
		DisplayName: "Firefox", Executable: "/usr/bin/firefox", Token: "firefox",
	}
	safariInfo = browser.Info{
		Kind: browser.KindSafari, Channel: browser.ChannelNone,
		DisplayName: "Safari", Token: "safari", BundleID: "com.apple.Safari",
	}
	lynxInfo = browser.Info{
		Kind: browser.KindOther, Channel: browser.ChannelNone,
		DisplayName: "Lynx", Executable: "/usr/bin/lynx", Token: "lynx",
	}
)

func newPlanner(t *testing.T) (*Planner, *fsys.MemFS) {
	t.Helper()
	fs := fsys.NewMemFS()
	fs.AddFile("/home/user/.config/google-chrome/Local State", []byte(`{
	  "profile": {
	    "info_cache": {"Default": {"name": "Personal"}, "Profile 1": {"name": "Work"}},
	    "last_used": "Default"
	  }
	}`))
	fs.AddFile("/home/user/.mozilla/firefox/profiles.ini", []byte(
		"[Profile0]\nName=Work\nIsRelative=1\nPath=abcd.work\nDefault=1\n"))
	store := profile.NewStore(fs, browser.NewLinuxProbe("/home/user"))
	return NewPlanner(store), fs
}

// countContaining reports how many warnings mention the given substring.
func countContaining(warnings []string, substr string) int {
	n := 0
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			n++
		}
	}
	return n
}

func TestPlanDefaultProfile(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &chromeInfo, URLs: []string{"https://example.com"}})
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/google-chrome", plan.Executable)
	assert.Empty(t, plan.Args)
	assert.Empty(t, plan.Warnings)
	assert.False(t, plan.UsesSystemDefault)
	assert.Equal(t, profile.ModeNone, plan.Profile.Mode)
	assert.Equal(t, []string{"https://example.com"}, plan.URLs)
}

func TestPlanNamedProfileChromium(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &chromeInfo, Profile: ProfileRequest{Named: "Work"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"--profile-directory=Profile 1"}, plan.Args)
	assert.Empty(t, plan.Warnings)
	assert.Equal(t, profile.ModeNamed, plan.Profile.Mode)
	assert.Equal(t, "Profile 1", plan.Profile.Dir)
}

func TestPlanNamedProfileFirefox(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &firefoxInfo, Profile: ProfileRequest{Named: "Work"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"-P", "Work"}, plan.Args)
	assert.Empty(t, plan.Warnings)
}

func TestPlanNamedProfileNotFound(t *testing.T) {
	p, _ := newPlanner(t)

	_, err := p.Plan(Request{Browser: &firefoxInfo, Profile: ProfileRequest{Named: "NoSuchProfile"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestPlanIncognitoOverridesProfile(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Browser: &chromeInfo,
		Profile: ProfileRequest{Named: "Work"},
		Window:  WindowOptions{Incognito: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--incognito"}, plan.Args)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "profile selection ignored")
	assert.Equal(t, profile.ModeNone, plan.Profile.Mode)
}

func TestPlanGuestOutranksIncognito(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Browser: &chromeInfo,
		Profile: ProfileRequest{Guest: true},
		Window:  WindowOptions{Incognito: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--guest"}, plan.Args)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "guest session takes precedence")
	assert.False(t, plan.Window.Incognito)
}

func TestPlanProfilePrecedence(t *testing.T) {
	tests := []struct {
		name         string
		req          ProfileRequest
		wantMode     profile.Mode
		wantWarnings int
	}{
		{"guest beats temporary", ProfileRequest{Guest: true, Temporary: true}, profile.ModeGuest, 1},
		{"guest beats custom dir", ProfileRequest{Guest: true, CustomDir: "/data/p"}, profile.ModeGuest, 1},
		{"guest beats named", ProfileRequest{Guest: true, Named: "Work"}, profile.ModeGuest, 1},
		{"temporary beats custom dir", ProfileRequest{Temporary: true, CustomDir: "/data/p"}, profile.ModeTemporary, 1},
		{"temporary beats named", ProfileRequest{Temporary: true, Named: "Work"}, profile.ModeTemporary, 1},
		{"custom dir beats named", ProfileRequest{CustomDir: "/data/p", Named: "Work"}, profile.ModeCustomDir, 1},
		{"everything at once", ProfileRequest{Guest: true, Temporary: true, CustomDir: "/data/p", Named: "Work"}, profile.ModeGuest, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPlanner(t)
			plan, err := p.Plan(Request{Browser: &chromeInfo, Profile: tt.req})
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, plan.Profile.Mode)
			assert.Len(t, plan.Warnings, tt.wantWarnings)
			for _, w := range plan.Warnings {
				assert.Contains(t, w, "takes precedence")
			}
		})
	}
}

func TestPlanTemporaryProfile(t *testing.T) {
	p, fs := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &chromeInfo, Profile: ProfileRequest{Temporary: true}})
	require.NoError(t, err)

	require.Len(t, plan.Args, 1)
	assert.True(t, strings.HasPrefix(plan.Args[0], "--user-data-dir="))
	assert.Equal(t, profile.ModeTemporary, plan.Profile.Mode)
	assert.True(t, plan.Profile.OwnsDir)
	assert.True(t, fs.IsDir(plan.Profile.Dir))
}

func TestPlanCustomDir(t *testing.T) {
	p, fs := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &chromeInfo, Profile: ProfileRequest{CustomDir: "/data/profiles/work"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"--user-data-dir=/data/profiles/work"}, plan.Args)
	assert.True(t, fs.IsDir("/data/profiles/work"))
	assert.False(t, plan.Profile.OwnsDir)
}

func TestPlanCustomDirTraversalRejected(t *testing.T) {
	p, _ := newPlanner(t)

	_, err := p.Plan(Request{Browser: &chromeInfo, Profile: ProfileRequest{CustomDir: "/data/../etc/p"}})
	assert.Error(t, err)
}

func TestPlanIgnoredProfileCreatesNothing(t *testing.T) {
	p, fs := newPlanner(t)

	// A write would fail loudly, so planning succeeds only if the discarded
	// temporary profile is never created.
	fs.FailWrites = true

	plan, err := p.Plan(Request{
		Browser: &chromeInfo,
		Profile: ProfileRequest{Temporary: true},
		Window:  WindowOptions{Incognito: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--incognito"}, plan.Args)
	require.Len(t, plan.Warnings, 1)
}

func TestPlanFirefoxGuestSubstitutesPrivateWindow(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &firefoxInfo, Profile: ProfileRequest{Guest: true}})
	require.NoError(t, err)

	assert.Equal(t, []string{"--private-window"}, plan.Args)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "guest")
	assert.Equal(t, profile.ModeNone, plan.Profile.Mode)
}

func TestPlanFirefoxWindowFlags(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Browser: &firefoxInfo,
		Window:  WindowOptions{Incognito: true, NewWindow: true, Kiosk: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"--private-window", "--new-window", "--kiosk"}, plan.Args)
	assert.Empty(t, plan.Warnings)
}

func TestPlanSafariDropsUnsupportedFeatures(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Browser: &safariInfo,
		Profile: ProfileRequest{Named: "Work"},
		Window:  WindowOptions{Incognito: true, Kiosk: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "open", plan.Executable)
	assert.Equal(t, []string{"-b", "com.apple.Safari"}, plan.Args)
	require.Len(t, plan.Warnings, 3)
	assert.Equal(t, 1, countContaining(plan.Warnings, "named profiles"))
	assert.Equal(t, 1, countContaining(plan.Warnings, "incognito"))
	assert.Equal(t, 1, countContaining(plan.Warnings, "kiosk"))
	assert.Equal(t, profile.ModeNone, plan.Profile.Mode)
}

func TestPlanSafariNewWindow(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{Browser: &safariInfo, Window: WindowOptions{NewWindow: true}})
	require.NoError(t, err)

	assert.Equal(t, []string{"-b", "com.apple.Safari", "-n"}, plan.Args)
	assert.Empty(t, plan.Warnings)
}

func TestPlanOtherKindWarnsEverything(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Browser: &lynxInfo,
		Profile: ProfileRequest{Named: "Work"},
		Window:  WindowOptions{NewWindow: true, Incognito: true, Kiosk: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/lynx", plan.Executable)
	assert.Empty(t, plan.Args)
	assert.Len(t, plan.Warnings, 4)
}

func TestPlanSystemDefault(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{URLs: []string{"https://example.com"}})
	require.NoError(t, err)

	assert.True(t, plan.UsesSystemDefault)
	assert.Empty(t, plan.Args)
	assert.Empty(t, plan.Executable)
	assert.Empty(t, plan.Warnings)
}

func TestPlanSystemDefaultWarnsOnOptions(t *testing.T) {
	p, _ := newPlanner(t)

	plan, err := p.Plan(Request{
		Profile: ProfileRequest{Guest: true},
		Window:  WindowOptions{Kiosk: true},
		URLs:    []string{"https://example.com"},
	})
	require.NoError(t, err)

	assert.True(t, plan.UsesSystemDefault)
	assert.Empty(t, plan.Args)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "system default")
}
