// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

// Kind identifies a known browser product. The set is closed; anything not
// recognized during detection is KindOther.
type Kind string

const (
	KindChrome   Kind = "chrome"
	KindEdge     Kind = "edge"
	KindBrave    Kind = "brave"
	KindVivaldi  Kind = "vivaldi"
	KindArc      Kind = "arc"
	KindHelium   Kind = "helium"
	KindOpera    Kind = "opera"
	KindChromium Kind = "chromium"
	KindFirefox  Kind = "firefox"
	KindWaterfox Kind = "waterfox"
	KindSafari   Kind = "safari"
	KindOther    Kind = "other"
)

// Family groups kinds by command-line capability surface.
type Family string

const (
	FamilyChromium Family = "chromium"
	FamilyFirefox  Family = "firefox"
	FamilySafari   Family = "safari"
	FamilyOther    Family = "other"
)

// Family returns the capability family for the kind.
func (k Kind) Family() Family {
	switch k {
	case KindChrome, KindEdge, KindBrave, KindVivaldi, KindArc, KindHelium, KindOpera, KindChromium:
		return FamilyChromium
	case KindFirefox, KindWaterfox:
		return FamilyFirefox
	case KindSafari:
		return FamilySafari
	default:
		return FamilyOther
	}
}

// Channel is a browser release track. Browsers that ship a single release
// track use ChannelNone.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelBeta   Channel = "beta"
	ChannelDev    Channel = "dev"
	ChannelCanary Channel = "canary"
	ChannelNone   Channel = "none"
)

// ParseChannel maps a user-supplied channel token to a Channel. Vendor
// nightly tracks are folded into canary, and Firefox "developer" into dev.
func ParseChannel(s string) (Channel, bool) {
	switch s {
	case "stable":
		return ChannelStable, true
	case "beta":
		return ChannelBeta, true
	case "dev", "developer":
		return ChannelDev, true
	case "canary", "nightly":
		return ChannelCanary, true
	case "", "none":
		return ChannelNone, true
	}
	return "", false
}

// Capabilities is the fixed set of launch features a browser family's command
// line supports. Values are compile-time constants per kind and are never
// discovered at runtime.
type Capabilities struct {
	NamedProfile  bool `json:"named_profile"`
	CustomUserDir bool `json:"custom_user_dir"`
	TempProfile   bool `json:"temp_profile"`
	Guest         bool `json:"guest"`
	Incognito     bool `json:"incognito"`
	NewWindow     bool `json:"new_window"`
	Kiosk         bool `json:"kiosk"`
}

// Capabilities returns the capability set for the kind. Pure lookup, no I/O.
func (k Kind) Capabilities() Capabilities {
	switch k.Family() {
	case FamilyChromium:
		return Capabilities{
			NamedProfile:  true,
			CustomUserDir: true,
			TempProfile:   true,
			Guest:         true,
			Incognito:     true,
			NewWindow:     true,
			Kiosk:         true,
		}
	case FamilyFirefox:
		// Firefox has no guest mode; private windows stand in for it.
		return Capabilities{
			NamedProfile:  true,
			CustomUserDir: true,
			TempProfile:   true,
			Incognito:     true,
			NewWindow:     true,
			Kiosk:         true,
		}
	case FamilySafari:
		// Safari exposes no profile or privacy switches on its command line.
		return Capabilities{NewWindow: true}
	default:
		return Capabilities{}
	}
}

// Info describes one detected browser installation.
type Info struct {
	Kind        Kind    `json:"kind"`
	Channel     Channel `json:"channel"`
	DisplayName string  `json:"display_name"`
	// Executable is the absolute path to the browser binary. Empty only for
	// Safari-style bundle launches where invocation goes through the OS.
	Executable string   `json:"executable,omitempty"`
	Token      string   `json:"token"`
	Aliases    []string `json:"aliases,omitempty"`
	BundleID   string   `json:"bundle_id,omitempty"`
}

// Family returns the capability family of the installation.
func (i Info) Family() Family { return i.Kind.Family() }

// Capabilities returns the fixed capability set of the installation.
func (i Info) Capabilities() Capabilities { return i.Kind.Capabilities() }
