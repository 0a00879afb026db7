// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package cmd wires the pathway CLI. The root command opens URLs; the
// subcommands inspect the machine (list, profiles, doctor) or expose the
// engine over MCP.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathwayhq/pathway/cliout"
	"github.com/pathwayhq/pathway/logutil"
)

// NewRootCmd creates the root command for pathway.
func NewRootCmd(version string) *cobra.Command {
	var (
		verbose bool
		output  string
		noColor bool
		opts    openOptions
	)

	cmd := &cobra.Command{
		Use:   "pathway <url>... [flags]",
		Short: "Route URLs to the right browser and profile",
		Long: `Pathway opens URLs in an installed browser of your choice, optionally
inside a specific profile or window mode. Without --browser it uses the
operating system's default handler.`,
		Example: `  $ pathway https://example.com
  $ pathway -b firefox -p Work https://gitlab.com
  $ pathway -b chrome --channel beta --incognito https://example.com
  $ pathway --temp-profile --new-window https://untrusted.example`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// JSON output keeps stdout machine-readable, so logs stay
			// structured on stderr as well.
			if err := cliout.SetFormat(output); err != nil {
				return err
			}
			if noColor {
				cliout.NoColor()
			}
			logutil.SetupLogger(verbose, cliout.IsJSON())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runOpen(opts, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "default", "Output format: default or json")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.Flags().StringVarP(&opts.browser, "browser", "b", "", "Browser to open the URLs with (name, alias, or display name)")
	cmd.Flags().StringVar(&opts.channel, "channel", "", "Release channel: stable, beta, dev, or canary")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Open in the named browser profile")
	cmd.Flags().StringVar(&opts.profileDir, "profile-dir", "", "Open with a custom user data directory")
	cmd.Flags().BoolVar(&opts.tempProfile, "temp-profile", false, "Open in a fresh throwaway profile")
	cmd.Flags().BoolVar(&opts.guest, "guest", false, "Open in a guest session")
	cmd.Flags().BoolVarP(&opts.incognito, "incognito", "i", false, "Open in a private/incognito window")
	cmd.Flags().BoolVarP(&opts.newWindow, "new-window", "n", false, "Open in a new window")
	cmd.Flags().BoolVar(&opts.kiosk, "kiosk", false, "Open in kiosk (fullscreen) mode")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the launch plan without spawning anything")

	cmd.SetVersionTemplate("pathway version {{.Version}}\n")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newProfilesCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newMCPCmd(version))

	return cmd
}
