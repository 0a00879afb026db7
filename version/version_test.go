// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	info := Current()
	if info.Version == "" {
		t.Error("Current().Version is empty")
	}
}

func TestString(t *testing.T) {
	info := Info{Version: "1.2.3", BuildDate: "2026-08-29", GitCommit: "abc1234"}
	s := info.String()
	for _, want := range []string{"1.2.3", "abc1234", "2026-08-29"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
