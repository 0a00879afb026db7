// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package profile locates and parses browser profile configuration.
//
// Each browser family stores profiles differently: the Chromium family keeps
// a "Local State" JSON document whose profile.info_cache maps on-disk
// directory names to display names, while the Firefox family keeps an
// INI-style profiles.ini with one [ProfileN] section per profile. The Store
// reads whichever format the target browser uses and exposes a uniform
// display name to directory mapping.
//
// Profile listings are read fresh on every query. Profiles can be created or
// renamed between two runs of the tool, so nothing here is cached.
//
// The Store also owns creation of temporary, self-contained profile
// directories (collision-resistant names under the OS temp area) and
// validation of caller-supplied custom profile directories. It never deletes
// anything; cleanup policy belongs to the caller.
package profile
