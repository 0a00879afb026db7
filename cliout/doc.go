// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package cliout formats command output. It supports a human-readable
// default format and JSON, with ANSI color when stdout is a terminal and
// ASCII fallbacks for symbols where Unicode is unreliable.
package cliout
