// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides shared test helpers, notably stdout capture for
// testing human-readable command output.
package testutil
