// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	"github.com/pathwayhq/pathway/cmd"
	"github.com/pathwayhq/pathway/version"
)

func main() {
	rootCmd := cmd.NewRootCmd(version.Current().String())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
