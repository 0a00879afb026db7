// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package logutil configures the process-wide slog logger. Output goes to
// stderr as text by default; JSON output and debug level are opt-in, with
// debug also honoring the PATHWAY_DEBUG environment variable.
package logutil
