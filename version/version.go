// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package version holds the build-time version information for pathway.
package version

import "fmt"

// Set via ldflags at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info is the version information in JSON-reportable form.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Current returns the version information of this build.
func Current() Info {
	return Info{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildDate)
}
