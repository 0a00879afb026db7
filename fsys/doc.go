// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package fsys provides a minimal filesystem abstraction for browser and
// profile discovery.
//
// Discovery is read-mostly: probing install locations, reading vendor
// configuration files, and one write path for temporary profile directories.
// The FileSystem interface captures exactly that surface so the discovery and
// resolution code can be exercised against an in-memory filesystem in tests
// instead of the host machine's real browser installs.
//
// Two implementations are provided:
//
//   - OS: delegates to the os package (production).
//   - MemFS: an in-memory map of files and directories (tests).
//
// # Example Usage
//
//	fs := fsys.NewOS()
//	if fs.Exists("/Applications/Safari.app") {
//	    // ...
//	}
//
// All implementations are safe for concurrent reads; MemFS mutation is not
// synchronized and is intended for single-goroutine test setup.
package fsys
