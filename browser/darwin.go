// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"path/filepath"
	"strings"

	"github.com/pathwayhq/pathway/fsys"
)

// DarwinProbe knows macOS application-bundle layout and LaunchServices.
type DarwinProbe struct {
	home string
	run  runCommand
}

// NewDarwinProbe returns a probe rooted at the given home directory.
func NewDarwinProbe(home string) *DarwinProbe {
	return &DarwinProbe{home: home, run: execOutput}
}

func (p *DarwinProbe) OS() string { return "darwin" }

type darwinCandidate struct {
	kind        Kind
	channel     Channel
	token       string
	displayName string
	bundles     []string
	executable  string // name under Contents/MacOS
	bundleIDs   []string
	aliases     []string
}

// Ordered by family, then channel, to keep Detect output reproducible.
var darwinCandidates = []darwinCandidate{
	{KindChrome, ChannelStable, "chrome", "Google Chrome", []string{"Google Chrome.app"}, "Google Chrome", []string{"com.google.Chrome"}, []string{"google-chrome", "chrome-stable"}},
	{KindChrome, ChannelBeta, "chrome-beta", "Google Chrome Beta", []string{"Google Chrome Beta.app"}, "Google Chrome Beta", []string{"com.google.Chrome.beta"}, []string{"google-chrome-beta"}},
	{KindChrome, ChannelDev, "chrome-dev", "Google Chrome Dev", []string{"Google Chrome Dev.app"}, "Google Chrome Dev", []string{"com.google.Chrome.dev"}, []string{"google-chrome-dev"}},
	{KindChrome, ChannelCanary, "chrome-canary", "Google Chrome Canary", []string{"Google Chrome Canary.app"}, "Google Chrome Canary", []string{"com.google.Chrome.canary"}, []string{"google-chrome-canary"}},
	{KindEdge, ChannelStable, "edge", "Microsoft Edge", []string{"Microsoft Edge.app"}, "Microsoft Edge", []string{"com.microsoft.edgemac"}, []string{"microsoft-edge"}},
	{KindEdge, ChannelBeta, "edge-beta", "Microsoft Edge Beta", []string{"Microsoft Edge Beta.app"}, "Microsoft Edge Beta", []string{"com.microsoft.edgemac.beta"}, []string{"microsoft-edge-beta"}},
	{KindEdge, ChannelDev, "edge-dev", "Microsoft Edge Dev", []string{"Microsoft Edge Dev.app"}, "Microsoft Edge Dev", []string{"com.microsoft.edgemac.dev"}, []string{"microsoft-edge-dev"}},
	{KindEdge, ChannelCanary, "edge-canary", "Microsoft Edge Canary", []string{"Microsoft Edge Canary.app"}, "Microsoft Edge Canary", []string{"com.microsoft.edgemac.canary"}, []string{"microsoft-edge-canary"}},
	{KindBrave, ChannelStable, "brave", "Brave Browser", []string{"Brave Browser.app"}, "Brave Browser", []string{"com.brave.Browser"}, []string{"brave-browser"}},
	{KindBrave, ChannelBeta, "brave-beta", "Brave Browser Beta", []string{"Brave Browser Beta.app"}, "Brave Browser Beta", []string{"com.brave.Browser.beta"}, []string{"brave-browser-beta"}},
	{KindBrave, ChannelDev, "brave-dev", "Brave Browser Dev", []string{"Brave Browser Dev.app"}, "Brave Browser Dev", []string{"com.brave.Browser.dev"}, []string{"brave-browser-dev"}},
	{KindBrave, ChannelCanary, "brave-nightly", "Brave Browser Nightly", []string{"Brave Browser Nightly.app"}, "Brave Browser Nightly", []string{"com.brave.Browser.nightly"}, []string{"brave-browser-nightly"}},
	{KindVivaldi, ChannelNone, "vivaldi", "Vivaldi", []string{"Vivaldi.app"}, "Vivaldi", []string{"com.vivaldi.Vivaldi"}, []string{"vivaldi-browser"}},
	{KindArc, ChannelNone, "arc", "Arc", []string{"Arc.app"}, "Arc", []string{"company.thebrowser.Browser"}, []string{"the-browser-arc"}},
	{KindHelium, ChannelNone, "helium", "Helium", []string{"Helium.app"}, "Helium", []string{"net.imput.helium"}, []string{"helium-browser"}},
	{KindOpera, ChannelNone, "opera", "Opera", []string{"Opera.app"}, "Opera", []string{"com.operasoftware.Opera"}, []string{"opera-browser"}},
	{KindChromium, ChannelNone, "chromium", "Chromium", []string{"Chromium.app"}, "Chromium", []string{"org.chromium.Chromium"}, []string{"chromium-browser"}},
	{KindFirefox, ChannelStable, "firefox", "Firefox", []string{"Firefox.app"}, "firefox", []string{"org.mozilla.firefox"}, []string{"mozilla-firefox", "firefox-stable"}},
	{KindFirefox, ChannelDev, "firefox-developer", "Firefox Developer Edition", []string{"Firefox Developer Edition.app"}, "firefox", []string{"org.mozilla.firefoxdeveloperedition"}, []string{"firefox-dev"}},
	{KindFirefox, ChannelCanary, "firefox-nightly", "Firefox Nightly", []string{"Firefox Nightly.app"}, "firefox", []string{"org.mozilla.nightly"}, []string{"nightly"}},
	{KindWaterfox, ChannelNone, "waterfox", "Waterfox", []string{"Waterfox.app", "Waterfox Current.app"}, "Waterfox", []string{"net.waterfox.waterfox"}, []string{"waterfox-current"}},
	{KindSafari, ChannelNone, "safari", "Safari", []string{"Safari.app"}, "Safari", []string{"com.apple.Safari"}, []string{"apple-safari"}},
}

func (p *DarwinProbe) basePaths() []string {
	bases := []string{"/Applications"}
	if p.home != "" {
		bases = append(bases, filepath.Join(p.home, "Applications"))
	}
	return bases
}

func (p *DarwinProbe) locate(fs fsys.FileSystem, c darwinCandidate) (string, bool) {
	for _, base := range p.basePaths() {
		for _, bundle := range c.bundles {
			exe := filepath.Join(base, bundle, "Contents", "MacOS", c.executable)
			if fs.IsExecutable(exe) {
				return exe, true
			}
		}
	}
	return "", false
}

func (p *DarwinProbe) info(c darwinCandidate, exe string) Info {
	return Info{
		Kind:        c.kind,
		Channel:     c.channel,
		DisplayName: c.displayName,
		Executable:  exe,
		Token:       c.token,
		Aliases:     c.aliases,
		BundleID:    c.bundleIDs[0],
	}
}

func (p *DarwinProbe) Detect(fs fsys.FileSystem) []Info {
	var out []Info
	for _, c := range darwinCandidates {
		if exe, ok := p.locate(fs, c); ok {
			out = append(out, p.info(c, exe))
		}
	}
	return out
}

func (p *DarwinProbe) DefaultHandlerID() (string, bool) {
	out, err := p.run("/usr/bin/defaults", "read", "com.apple.LaunchServices/com.apple.launchservices.secure")
	if err != nil {
		return "", false
	}
	if id := parseLaunchServicesHandler(string(out), "https"); id != "" {
		return id, true
	}
	if id := parseLaunchServicesHandler(string(out), "http"); id != "" {
		return id, true
	}
	return "", false
}

func (p *DarwinProbe) MatchHandler(fs fsys.FileSystem, id string) (Info, bool) {
	for _, c := range darwinCandidates {
		for _, bid := range c.bundleIDs {
			if !strings.EqualFold(bid, id) {
				continue
			}
			if exe, ok := p.locate(fs, c); ok {
				return p.info(c, exe), true
			}
		}
	}
	return Info{}, false
}

func (p *DarwinProbe) ChromiumConfigDir(kind Kind) (string, bool) {
	if p.home == "" {
		return "", false
	}
	support := filepath.Join(p.home, "Library", "Application Support")
	switch kind {
	case KindChrome:
		return filepath.Join(support, "Google", "Chrome"), true
	case KindEdge:
		return filepath.Join(support, "Microsoft Edge"), true
	case KindBrave:
		return filepath.Join(support, "BraveSoftware", "Brave-Browser"), true
	case KindVivaldi:
		return filepath.Join(support, "Vivaldi"), true
	case KindArc:
		return filepath.Join(support, "Arc"), true
	case KindHelium:
		return filepath.Join(support, "net.imput.helium"), true
	case KindOpera:
		return filepath.Join(support, "com.operasoftware.Opera"), true
	case KindChromium:
		return filepath.Join(support, "Chromium"), true
	}
	return "", false
}

func (p *DarwinProbe) FirefoxConfigDir() (string, bool) {
	if p.home == "" {
		return "", false
	}
	return filepath.Join(p.home, "Library", "Application Support", "Firefox"), true
}

// parseLaunchServicesHandler pulls the handler bundle ID for a URL scheme out
// of the plist-ish text that `defaults read` emits for the LaunchServices
// secure handler store.
func parseLaunchServicesHandler(data, scheme string) string {
	var curScheme, curHandler string
	for _, line := range strings.Split(data, "\n") {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, "LSHandlerURLScheme"):
			curScheme = parseDefaultsValue(t)
		case strings.HasPrefix(t, "LSHandlerRoleAll"), strings.HasPrefix(t, "LSHandlerRoleViewer"):
			curHandler = parseDefaultsValue(t)
		case t == "};" || t == "}":
			if curScheme == scheme && curHandler != "" {
				return curHandler
			}
			curScheme, curHandler = "", ""
		}
	}
	return ""
}

func parseDefaultsValue(line string) string {
	_, v, ok := strings.Cut(line, "=")
	if !ok {
		return ""
	}
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), ";"))
	return strings.Trim(v, `"`)
}
