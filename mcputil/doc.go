// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

// Package mcputil carries the shared plumbing of the MCP server: tool-call
// argument extraction, JSON tool results, and rate limiting for tools that
// spawn processes.
package mcputil
