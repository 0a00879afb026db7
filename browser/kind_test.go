// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import "testing"

func TestCapabilitiesAreFixedPerFamily(t *testing.T) {
	tests := []struct {
		kind Kind
		want Capabilities
	}{
		{KindChrome, Capabilities{true, true, true, true, true, true, true}},
		{KindEdge, Capabilities{true, true, true, true, true, true, true}},
		{KindBrave, Capabilities{true, true, true, true, true, true, true}},
		{KindVivaldi, Capabilities{true, true, true, true, true, true, true}},
		{KindArc, Capabilities{true, true, true, true, true, true, true}},
		{KindHelium, Capabilities{true, true, true, true, true, true, true}},
		{KindOpera, Capabilities{true, true, true, true, true, true, true}},
		{KindChromium, Capabilities{true, true, true, true, true, true, true}},
		{KindFirefox, Capabilities{NamedProfile: true, CustomUserDir: true, TempProfile: true, Incognito: true, NewWindow: true, Kiosk: true}},
		{KindWaterfox, Capabilities{NamedProfile: true, CustomUserDir: true, TempProfile: true, Incognito: true, NewWindow: true, Kiosk: true}},
		{KindSafari, Capabilities{NewWindow: true}},
		{KindOther, Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Capabilities(); got != tt.want {
				t.Errorf("Capabilities(%s) = %+v, want %+v", tt.kind, got, tt.want)
			}
			// Lookup must be stable across calls: a pure table, not state.
			if again := tt.kind.Capabilities(); again != tt.want {
				t.Errorf("Capabilities(%s) changed between calls", tt.kind)
			}
		})
	}
}

func TestFamilyClassification(t *testing.T) {
	tests := []struct {
		kind Kind
		want Family
	}{
		{KindChrome, FamilyChromium},
		{KindChromium, FamilyChromium},
		{KindOpera, FamilyChromium},
		{KindFirefox, FamilyFirefox},
		{KindWaterfox, FamilyFirefox},
		{KindSafari, FamilySafari},
		{KindOther, FamilyOther},
	}
	for _, tt := range tests {
		if got := tt.kind.Family(); got != tt.want {
			t.Errorf("Family(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in     string
		want   Channel
		wantOK bool
	}{
		{"stable", ChannelStable, true},
		{"beta", ChannelBeta, true},
		{"dev", ChannelDev, true},
		{"developer", ChannelDev, true},
		{"canary", ChannelCanary, true},
		{"nightly", ChannelCanary, true},
		{"", ChannelNone, true},
		{"none", ChannelNone, true},
		{"esr", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseChannel(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseChannel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
