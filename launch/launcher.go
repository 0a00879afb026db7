// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package launch

import (
	"log/slog"
	"os/exec"

	osbrowser "github.com/pkg/browser"
)

// Outcome is the spawn result for one URL.
type Outcome struct {
	URL string `json:"url"`
	OK  bool   `json:"ok"`
	Err string `json:"error,omitempty"`
}

// Launcher executes plans. It is fire-and-forget: it reports only whether
// each process started, never what the browser did afterwards.
type Launcher struct {
	spawn   func(name string, args []string) error
	openURL func(url string) error
}

func NewLauncher() *Launcher {
	return &Launcher{spawn: spawnDetached, openURL: osbrowser.OpenURL}
}

// Launch spawns one process per URL in input order. A failed spawn is
// recorded in that URL's outcome and does not abort the rest of the batch.
func (l *Launcher) Launch(plan Plan) []Outcome {
	outcomes := make([]Outcome, 0, len(plan.URLs))
	for _, u := range plan.URLs {
		var err error
		if plan.UsesSystemDefault {
			slog.Debug("opening with system default handler", "url", u)
			err = l.openURL(u)
		} else {
			args := append(append([]string{}, plan.Args...), u)
			slog.Debug("spawning browser", "executable", plan.Executable, "args", args)
			err = l.spawn(plan.Executable, args)
		}
		if err != nil {
			outcomes = append(outcomes, Outcome{URL: u, Err: err.Error()})
			continue
		}
		outcomes = append(outcomes, Outcome{URL: u, OK: true})
	}
	return outcomes
}

// spawnDetached starts the process and releases the handle immediately.
// Stdio stays disconnected so a chatty browser cannot interleave with our
// own output.
func spawnDetached(name string, args []string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
