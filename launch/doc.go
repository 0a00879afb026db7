// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package launch turns a browser, a profile selection, and window options
// into a concrete process invocation.
//
// The Planner is the conflict-resolution engine: it applies profile
// precedence, checks every requested feature against the browser's fixed
// capability set, and degrades unsupported combinations to warnings on the
// plan instead of failing. The Launcher spawns the planned command once per
// URL without waiting for the browser to exit.
package launch
