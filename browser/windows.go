// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"os"
	"path/filepath"

	"github.com/pathwayhq/pathway/fsys"
)

// WindowsProbe knows Program Files and LocalAppData install layouts.
//
// Default-handler detection requires the UserChoice registry key, which is
// not readable through a stable public contract; the probe reports the
// handler as unknown and launches fall back to the shell's own URL dispatch.
type WindowsProbe struct {
	home     string
	baseDirs []string
}

// NewWindowsProbe returns a probe using the conventional install roots from
// the environment (ProgramFiles, ProgramFiles(x86), LocalAppData).
func NewWindowsProbe(home string) *WindowsProbe {
	var bases []string
	for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
		if v := os.Getenv(env); v != "" {
			bases = append(bases, v)
		}
	}
	return &WindowsProbe{home: home, baseDirs: bases}
}

// NewWindowsProbeAt returns a probe with explicit install roots, for tests.
func NewWindowsProbeAt(home string, baseDirs []string) *WindowsProbe {
	return &WindowsProbe{home: home, baseDirs: baseDirs}
}

func (p *WindowsProbe) OS() string { return "windows" }

type windowsCandidate struct {
	kind          Kind
	channel       Channel
	token         string
	displayName   string
	relativePaths []string
	aliases       []string
}

// Ordered by family, then channel, to keep Detect output reproducible.
var windowsCandidates = []windowsCandidate{
	{KindChrome, ChannelStable, "chrome", "Google Chrome", []string{`Google\Chrome\Application\chrome.exe`}, []string{"google-chrome", "chrome-stable"}},
	{KindChrome, ChannelBeta, "chrome-beta", "Google Chrome Beta", []string{`Google\Chrome Beta\Application\chrome.exe`}, []string{"google-chrome-beta"}},
	{KindChrome, ChannelDev, "chrome-dev", "Google Chrome Dev", []string{`Google\Chrome Dev\Application\chrome.exe`}, []string{"google-chrome-dev"}},
	{KindChrome, ChannelCanary, "chrome-canary", "Google Chrome Canary", []string{`Google\Chrome SxS\Application\chrome.exe`}, []string{"google-chrome-canary"}},
	{KindEdge, ChannelStable, "edge", "Microsoft Edge", []string{`Microsoft\Edge\Application\msedge.exe`}, []string{"microsoft-edge"}},
	{KindEdge, ChannelBeta, "edge-beta", "Microsoft Edge Beta", []string{`Microsoft\Edge Beta\Application\msedge.exe`}, []string{"microsoft-edge-beta"}},
	{KindEdge, ChannelDev, "edge-dev", "Microsoft Edge Dev", []string{`Microsoft\Edge Dev\Application\msedge.exe`}, []string{"microsoft-edge-dev"}},
	{KindEdge, ChannelCanary, "edge-canary", "Microsoft Edge Canary", []string{`Microsoft\Edge SxS\Application\msedge.exe`}, []string{"microsoft-edge-canary"}},
	{KindBrave, ChannelStable, "brave", "Brave Browser", []string{`BraveSoftware\Brave-Browser\Application\brave.exe`}, []string{"brave-browser"}},
	{KindBrave, ChannelBeta, "brave-beta", "Brave Browser Beta", []string{`BraveSoftware\Brave-Browser-Beta\Application\brave.exe`}, []string{"brave-browser-beta"}},
	{KindBrave, ChannelCanary, "brave-nightly", "Brave Browser Nightly", []string{`BraveSoftware\Brave-Browser-Nightly\Application\brave.exe`}, []string{"brave-browser-nightly"}},
	{KindVivaldi, ChannelNone, "vivaldi", "Vivaldi", []string{`Vivaldi\Application\vivaldi.exe`}, []string{"vivaldi-browser"}},
	{KindHelium, ChannelNone, "helium", "Helium", []string{`Helium\Application\helium.exe`}, []string{"helium-browser"}},
	{KindOpera, ChannelNone, "opera", "Opera", []string{`Opera\opera.exe`, `Opera\launcher.exe`}, []string{"opera-browser"}},
	{KindChromium, ChannelNone, "chromium", "Chromium", []string{`Chromium\Application\chrome.exe`, `Chromium\Application\chromium.exe`}, []string{"chromium-browser"}},
	{KindFirefox, ChannelStable, "firefox", "Mozilla Firefox", []string{`Mozilla Firefox\firefox.exe`}, []string{"mozilla-firefox", "firefox-stable"}},
	{KindFirefox, ChannelDev, "firefox-developer", "Firefox Developer Edition", []string{`Firefox Developer Edition\firefox.exe`}, []string{"firefox-dev"}},
	{KindFirefox, ChannelCanary, "firefox-nightly", "Firefox Nightly", []string{`Firefox Nightly\firefox.exe`}, []string{"nightly"}},
	{KindWaterfox, ChannelNone, "waterfox", "Waterfox", []string{`Waterfox\waterfox.exe`}, []string{"waterfox-browser"}},
}

func (p *WindowsProbe) locate(fs fsys.FileSystem, c windowsCandidate) (string, bool) {
	for _, base := range p.baseDirs {
		for _, rel := range c.relativePaths {
			path := filepath.Join(base, rel)
			if fs.IsExecutable(path) {
				return path, true
			}
		}
	}
	return "", false
}

func (p *WindowsProbe) Detect(fs fsys.FileSystem) []Info {
	var out []Info
	for _, c := range windowsCandidates {
		if exe, ok := p.locate(fs, c); ok {
			out = append(out, Info{
				Kind:        c.kind,
				Channel:     c.channel,
				DisplayName: c.displayName,
				Executable:  exe,
				Token:       c.token,
				Aliases:     c.aliases,
			})
		}
	}
	return out
}

func (p *WindowsProbe) DefaultHandlerID() (string, bool) { return "", false }

func (p *WindowsProbe) MatchHandler(fsys.FileSystem, string) (Info, bool) {
	return Info{}, false
}

func (p *WindowsProbe) ChromiumConfigDir(kind Kind) (string, bool) {
	if p.home == "" {
		return "", false
	}
	local := filepath.Join(p.home, "AppData", "Local")
	switch kind {
	case KindChrome:
		return filepath.Join(local, "Google", "Chrome", "User Data"), true
	case KindEdge:
		return filepath.Join(local, "Microsoft", "Edge", "User Data"), true
	case KindBrave:
		return filepath.Join(local, "BraveSoftware", "Brave-Browser", "User Data"), true
	case KindVivaldi:
		return filepath.Join(local, "Vivaldi", "User Data"), true
	case KindHelium:
		return filepath.Join(local, "Helium", "User Data"), true
	case KindOpera:
		return filepath.Join(p.home, "AppData", "Roaming", "Opera Software", "Opera Stable"), true
	case KindChromium:
		return filepath.Join(local, "Chromium", "User Data"), true
	}
	return "", false
}

func (p *WindowsProbe) FirefoxConfigDir() (string, bool) {
	if p.home == "" {
		return "", false
	}
	return filepath.Join(p.home, "AppData", "Roaming", "Mozilla", "Firefox"), true
}
