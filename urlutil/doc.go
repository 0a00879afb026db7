// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package urlutil validates and normalizes the URLs handed to the launch
// engine. Only http, https, and file URLs pass; scripting and legacy
// transfer schemes are rejected outright, and file paths are checked for
// traversal sequences before they reach any browser command line.
package urlutil
