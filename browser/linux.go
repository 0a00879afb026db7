// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"path/filepath"
	"strings"

	"github.com/pathwayhq/pathway/fsys"
)

// LinuxProbe knows Linux binary directories, snap/flatpak export paths, and
// the xdg-settings default-handler query.
type LinuxProbe struct {
	home string
	run  runCommand
}

// NewLinuxProbe returns a probe rooted at the given home directory.
func NewLinuxProbe(home string) *LinuxProbe {
	return &LinuxProbe{home: home, run: execOutput}
}

func (p *LinuxProbe) OS() string { return "linux" }

type linuxCandidate struct {
	kind           Kind
	channel        Channel
	token          string
	displayName    string
	binaries       []string
	desktopEntries []string
	aliases        []string
}

// Ordered by family, then channel, to keep Detect output reproducible.
var linuxCandidates = []linuxCandidate{
	{KindChrome, ChannelStable, "chrome", "Google Chrome", []string{"google-chrome", "google-chrome-stable", "chrome"}, []string{"google-chrome.desktop", "google-chrome-stable.desktop", "chrome.desktop"}, []string{"google-chrome", "chrome-stable"}},
	{KindChrome, ChannelBeta, "chrome-beta", "Google Chrome Beta", []string{"google-chrome-beta"}, []string{"google-chrome-beta.desktop"}, []string{"google-chrome-beta"}},
	{KindChrome, ChannelDev, "chrome-dev", "Google Chrome Dev", []string{"google-chrome-unstable", "google-chrome-dev"}, []string{"google-chrome-unstable.desktop", "google-chrome-dev.desktop"}, []string{"google-chrome-dev"}},
	{KindChrome, ChannelCanary, "chrome-canary", "Google Chrome Canary", []string{"google-chrome-canary"}, []string{"google-chrome-canary.desktop"}, []string{"google-chrome-canary"}},
	{KindEdge, ChannelStable, "edge", "Microsoft Edge", []string{"microsoft-edge", "microsoft-edge-stable"}, []string{"microsoft-edge.desktop", "microsoft-edge-stable.desktop"}, []string{"microsoft-edge"}},
	{KindEdge, ChannelBeta, "edge-beta", "Microsoft Edge Beta", []string{"microsoft-edge-beta"}, []string{"microsoft-edge-beta.desktop"}, []string{"microsoft-edge-beta"}},
	{KindEdge, ChannelDev, "edge-dev", "Microsoft Edge Dev", []string{"microsoft-edge-dev"}, []string{"microsoft-edge-dev.desktop"}, []string{"microsoft-edge-dev"}},
	{KindBrave, ChannelStable, "brave", "Brave Browser", []string{"brave-browser", "brave"}, []string{"brave-browser.desktop"}, []string{"brave-browser"}},
	{KindBrave, ChannelBeta, "brave-beta", "Brave Browser Beta", []string{"brave-browser-beta"}, []string{"brave-browser-beta.desktop"}, []string{"brave-browser-beta"}},
	{KindBrave, ChannelCanary, "brave-nightly", "Brave Browser Nightly", []string{"brave-browser-nightly"}, []string{"brave-browser-nightly.desktop"}, []string{"brave-browser-nightly"}},
	{KindVivaldi, ChannelNone, "vivaldi", "Vivaldi", []string{"vivaldi", "vivaldi-stable"}, []string{"vivaldi.desktop", "vivaldi-stable.desktop"}, []string{"vivaldi-browser"}},
	{KindArc, ChannelNone, "arc", "Arc", []string{"arc"}, []string{"company.thebrowser.Arc.desktop"}, nil},
	{KindHelium, ChannelNone, "helium", "Helium", []string{"helium", "helium-browser"}, []string{"net.imput.helium.desktop"}, []string{"helium-browser"}},
	{KindOpera, ChannelNone, "opera", "Opera", []string{"opera"}, []string{"opera.desktop"}, []string{"opera-browser"}},
	{KindChromium, ChannelNone, "chromium", "Chromium", []string{"chromium", "chromium-browser"}, []string{"chromium.desktop", "chromium-browser.desktop", "org.chromium.Chromium.desktop"}, []string{"chromium-browser"}},
	{KindFirefox, ChannelStable, "firefox", "Firefox", []string{"firefox"}, []string{"firefox.desktop", "org.mozilla.firefox.desktop"}, []string{"mozilla-firefox", "firefox-stable"}},
	{KindFirefox, ChannelDev, "firefox-developer", "Firefox Developer Edition", []string{"firefox-developer-edition", "firefox-developer"}, []string{"firefoxdeveloperedition.desktop", "firefox-developer-edition.desktop"}, []string{"firefox-dev"}},
	{KindFirefox, ChannelCanary, "firefox-nightly", "Firefox Nightly", []string{"firefox-nightly"}, []string{"firefox-nightly.desktop"}, []string{"nightly"}},
	{KindWaterfox, ChannelNone, "waterfox", "Waterfox", []string{"waterfox"}, []string{"waterfox.desktop", "org.waterfoxproject.waterfox.desktop"}, []string{"waterfox-browser"}},
}

func (p *LinuxProbe) searchDirs(fs fsys.FileSystem) []string {
	dirs := []string{"/usr/bin", "/usr/local/bin", "/snap/bin", "/opt"}
	if p.home != "" {
		dirs = append(dirs,
			filepath.Join(p.home, ".local", "bin"),
			filepath.Join(p.home, "bin"),
		)
	}
	// Flatpak export dirs only count when present.
	flatpak := []string{"/var/lib/flatpak/exports/bin"}
	if p.home != "" {
		flatpak = append(flatpak, filepath.Join(p.home, ".local", "share", "flatpak", "exports", "bin"))
	}
	for _, d := range flatpak {
		if fs.Exists(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (p *LinuxProbe) locate(fs fsys.FileSystem, c linuxCandidate) (string, bool) {
	dirs := p.searchDirs(fs)
	for _, bin := range c.binaries {
		for _, dir := range dirs {
			path := filepath.Join(dir, bin)
			if fs.IsExecutable(path) {
				return path, true
			}
		}
	}
	return "", false
}

func (p *LinuxProbe) info(c linuxCandidate, exe string) Info {
	return Info{
		Kind:        c.kind,
		Channel:     c.channel,
		DisplayName: c.displayName,
		Executable:  exe,
		Token:       c.token,
		Aliases:     c.aliases,
	}
}

func (p *LinuxProbe) Detect(fs fsys.FileSystem) []Info {
	var out []Info
	for _, c := range linuxCandidates {
		if exe, ok := p.locate(fs, c); ok {
			out = append(out, p.info(c, exe))
		}
	}
	return out
}

func (p *LinuxProbe) DefaultHandlerID() (string, bool) {
	out, err := p.run("xdg-settings", "get", "default-web-browser")
	if err != nil {
		return "", false
	}
	entry := strings.TrimSpace(string(out))
	if entry == "" {
		return "", false
	}
	return entry, true
}

func (p *LinuxProbe) MatchHandler(fs fsys.FileSystem, id string) (Info, bool) {
	for _, c := range linuxCandidates {
		for _, entry := range c.desktopEntries {
			if !strings.EqualFold(entry, id) {
				continue
			}
			if exe, ok := p.locate(fs, c); ok {
				return p.info(c, exe), true
			}
		}
	}
	return Info{}, false
}

func (p *LinuxProbe) ChromiumConfigDir(kind Kind) (string, bool) {
	if p.home == "" {
		return "", false
	}
	cfg := filepath.Join(p.home, ".config")
	switch kind {
	case KindChrome:
		return filepath.Join(cfg, "google-chrome"), true
	case KindEdge:
		return filepath.Join(cfg, "microsoft-edge"), true
	case KindBrave:
		return filepath.Join(cfg, "BraveSoftware", "Brave-Browser"), true
	case KindVivaldi:
		return filepath.Join(cfg, "vivaldi"), true
	case KindArc:
		return filepath.Join(cfg, "arc"), true
	case KindHelium:
		return filepath.Join(cfg, "helium"), true
	case KindOpera:
		return filepath.Join(cfg, "opera"), true
	case KindChromium:
		return filepath.Join(cfg, "chromium"), true
	}
	return "", false
}

func (p *LinuxProbe) FirefoxConfigDir() (string, bool) {
	if p.home == "" {
		return "", false
	}
	return filepath.Join(p.home, ".mozilla", "firefox"), true
}
