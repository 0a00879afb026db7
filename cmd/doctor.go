// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/cliout"
	"github.com/pathwayhq/pathway/procutil"
)

type doctorBrowser struct {
	browser.Info
	Running  bool `json:"running"`
	Profiles int  `json:"profiles"`
}

type doctorResult struct {
	OS              string          `json:"os"`
	Browsers        []doctorBrowser `json:"browsers"`
	Default         *browser.Info   `json:"default,omitempty"`
	TempDirWritable bool            `json:"temp_dir_writable"`
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the launch environment",
		Long: `Report everything a launch depends on: which browsers are installed,
which one is the system default, whether any are already running, how
many profiles each declares, and whether temporary profiles can be
created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()

			result := doctorResult{
				OS:              osName(),
				TempDirWritable: tempDirWritable(),
			}
			for _, b := range eng.registry.Detect() {
				profiles, err := eng.store.List(b)
				if err != nil {
					// A corrupt profile registry should not hide the
					// browser from diagnostics.
					profiles = nil
				}
				result.Browsers = append(result.Browsers, doctorBrowser{
					Info:     b,
					Running:  procutil.IsRunning(b.Executable),
					Profiles: len(profiles),
				})
			}
			if def, ok := eng.registry.SystemDefault(); ok {
				result.Default = &def
			}

			return cliout.Print(result, func() { printDoctor(result) })
		},
	}
}

func osName() string {
	return browser.NewProbe().OS()
}

// tempDirWritable probes temporary-profile creation with a real write.
func tempDirWritable() bool {
	path := filepath.Join(os.TempDir(), "pathway-doctor-"+uuid.NewString())
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		return false
	}
	_ = os.Remove(path)
	return true
}

func printDoctor(result doctorResult) {
	cliout.Plain("OS: %s", result.OS)
	cliout.Newline()

	if len(result.Browsers) == 0 {
		cliout.Warning("no browsers detected; URLs will open with the system default handler")
	}
	for _, b := range result.Browsers {
		cliout.Success("%s (%s)", b.DisplayName, b.Channel)
		cliout.Label("executable", b.Executable)
		if b.Profiles > 0 {
			cliout.Label("profiles", cliout.Muted("%d", b.Profiles))
		}
		if b.Running {
			cliout.Label("status", "running")
		}
	}
	cliout.Newline()

	if result.Default != nil {
		cliout.Success("system default: %s", result.Default.DisplayName)
	} else {
		cliout.Warning("system default browser could not be determined")
	}
	if result.TempDirWritable {
		cliout.Success("temporary profile directory is writable")
	} else {
		cliout.Error("temporary profile directory is not writable")
	}
}
