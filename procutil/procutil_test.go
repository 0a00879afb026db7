// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"os"
	"testing"
)

func TestRunningInstancesFindsSelf(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}

	pids, err := RunningInstances(exe)
	if err != nil {
		t.Fatal(err)
	}

	self := int32(os.Getpid())
	found := false
	for _, pid := range pids {
		if pid == self {
			found = true
		}
	}
	if !found {
		t.Errorf("RunningInstances(%q) = %v, missing own pid %d", exe, pids, self)
	}
}

func TestRunningInstancesEmptyPath(t *testing.T) {
	pids, err := RunningInstances("")
	if err != nil {
		t.Fatal(err)
	}
	if len(pids) != 0 {
		t.Errorf("RunningInstances(\"\") = %v, want none", pids)
	}
}

func TestIsRunningUnknownExecutable(t *testing.T) {
	if IsRunning("/nonexistent/path/to/some-browser-that-cannot-exist") {
		t.Error("IsRunning() = true for a nonexistent executable")
	}
}
