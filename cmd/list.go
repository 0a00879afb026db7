// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pathwayhq/pathway/browser"
	"github.com/pathwayhq/pathway/cliout"
)

type listResult struct {
	Browsers []browser.Info `json:"browsers"`
	Default  *browser.Info  `json:"default,omitempty"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed browsers",
		Long: `List every browser pathway can find on this machine, one entry per
installed release channel, and mark the system default handler.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()

			result := listResult{Browsers: eng.registry.Detect()}
			if def, ok := eng.registry.SystemDefault(); ok {
				result.Default = &def
			}

			return cliout.Print(result, func() { printBrowsers(result) })
		},
	}
}

func printBrowsers(result listResult) {
	if len(result.Browsers) == 0 {
		cliout.Plain("No browsers found.")
		return
	}

	rows := make([]cliout.TableRow, 0, len(result.Browsers))
	for _, b := range result.Browsers {
		def := ""
		if result.Default != nil && b.Token == result.Default.Token && b.Channel == result.Default.Channel {
			def = "(default)"
		}
		rows = append(rows, cliout.TableRow{
			"NAME":       b.Token,
			"BROWSER":    b.DisplayName,
			"CHANNEL":    string(b.Channel),
			"EXECUTABLE": b.Executable,
			"":           def,
		})
	}
	cliout.Table([]string{"NAME", "BROWSER", "CHANNEL", "EXECUTABLE", ""}, rows)
}
