// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package procutil answers whether a browser is already running. It wraps
// github.com/shirou/gopsutil/v4/process, which uses the native process
// APIs on each platform (Windows API, /proc on Linux, sysctl on macOS) and
// avoids the stale-PID pitfalls of os.FindProcess on Windows.
//
// A launch never depends on this information; it only informs diagnostics
// and the note that a spawn will reuse an existing browser instance.
package procutil
