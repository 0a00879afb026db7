// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package browser discovers installed web browsers and classifies them into
// capability families.
//
// Discovery is driven by a per-OS PlatformProbe that knows where each browser
// family and release channel installs its executable: application bundles on
// macOS, standard binary directories (plus snap and flatpak export paths) on
// Linux, and Program Files / LocalAppData relative paths on Windows. A probe
// is selected once at startup from runtime.GOOS; business logic never
// branches on the host OS.
//
// Each detected browser is classified into one of a closed set of kinds
// (Chrome, Edge, Brave, Firefox, Safari, ...) carrying a fixed capability set
// describing which launch features that family's command line supports. The
// capability table is a compile-time constant: it never changes between
// invocations and is independent of the host machine's installed state.
//
// # Example Usage
//
//	reg := browser.NewRegistry(fsys.NewOS(), browser.NewProbe())
//	for _, b := range reg.Detect() {
//	    fmt.Printf("%s (%s): %s\n", b.DisplayName, b.Channel, b.Executable)
//	}
//
// Detection results are never cached across invocations; every call is a
// fresh filesystem read.
package browser
