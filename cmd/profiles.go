// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/cliout"
	"github.com/pathwayhq/pathway/profile"
)

type profilesResult struct {
	Browser  browser.Info    `json:"browser"`
	Profiles []profile.Entry `json:"profiles"`
}

func newProfilesCmd() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "profiles <browser>",
		Short: "List a browser's profiles",
		Long: `List the profiles declared in a browser's own configuration. A browser
that supports profiles but has never created any reports its implicit
default profile.`,
		Example: `  $ pathway profiles chrome
  $ pathway profiles firefox -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				// resolveTarget treats an empty name as "use the system
				// default", which may resolve to nothing at all; profiles
				// needs a concrete browser.
				return fmt.Errorf("browser name cannot be empty")
			}

			eng := newEngine()

			target, err := eng.resolveTarget(name, channel)
			if err != nil {
				return err
			}

			entries, err := eng.store.List(*target)
			if err != nil {
				return err
			}
			if len(entries) == 0 && target.Capabilities().NamedProfile {
				// The browser has not written its profile registry yet, but
				// launching without a profile flag still lands in a default
				// profile, so report that.
				entries = []profile.Entry{implicitDefaultEntry(*target)}
			}

			result := profilesResult{Browser: *target, Profiles: entries}
			return cliout.Print(result, func() { printProfiles(result) })
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "Release channel: stable, beta, dev, or canary")
	return cmd
}

// implicitDefaultEntry describes the profile a browser falls back to when
// its registry has never been written. Chromium browsers create a "Default"
// directory on first run; Firefox generates a salted directory name, so only
// the display name is known up front.
func implicitDefaultEntry(b browser.Info) profile.Entry {
	entry := profile.Entry{Name: "Default", Default: true}
	if b.Family() == browser.FamilyChromium {
		entry.Dir = "Default"
	}
	return entry
}

func printProfiles(result profilesResult) {
	if len(result.Profiles) == 0 {
		cliout.Plain("%s has no profiles.", result.Browser.DisplayName)
		return
	}

	rows := make([]cliout.TableRow, 0, len(result.Profiles))
	for _, p := range result.Profiles {
		def := ""
		if p.Default {
			def = "(default)"
		}
		rows = append(rows, cliout.TableRow{
			"PROFILE":   p.Name,
			"DIRECTORY": p.Dir,
			"":          def,
		})
	}
	cliout.Table([]string{"PROFILE", "DIRECTORY", ""}, rows)
}
