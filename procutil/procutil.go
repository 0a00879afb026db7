// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// RunningInstances returns the PIDs of live processes started from the
// given executable. Matching is by full path first, falling back to base
// name because several browsers re-exec themselves through helper paths.
func RunningInstances(executable string) ([]int32, error) {
	if executable == "" {
		return nil, nil
	}
	base := filepath.Base(executable)

	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int32
	for _, p := range procs {
		exe, err := p.Exe()
		if err != nil {
			// Processes owned by other users commonly deny this; they
			// cannot be the browser we just resolved for this user.
			continue
		}
		if exe == executable || strings.EqualFold(filepath.Base(exe), base) {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// IsRunning reports whether at least one instance of the executable is
// currently alive.
func IsRunning(executable string) bool {
	pids, err := RunningInstances(executable)
	return err == nil && len(pids) > 0
}
