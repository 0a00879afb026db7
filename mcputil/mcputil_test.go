// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package mcputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStringParam(t *testing.T) {
	args := map[string]any{"browser": "firefox", "count": 3}

	got, ok := GetStringParam(args, "browser")
	assert.True(t, ok)
	assert.Equal(t, "firefox", got)

	_, ok = GetStringParam(args, "count")
	assert.False(t, ok, "non-string value must not match")

	_, ok = GetStringParam(args, "missing")
	assert.False(t, ok)
}

func TestGetBoolParam(t *testing.T) {
	args := map[string]any{"incognito": true, "profile": "Work"}

	got, ok := GetBoolParam(args, "incognito")
	assert.True(t, ok)
	assert.True(t, got)

	_, ok = GetBoolParam(args, "profile")
	assert.False(t, ok)
}

func TestGetStringSliceParam(t *testing.T) {
	args := map[string]any{
		"urls":   []any{"https://a.example", "https://b.example"},
		"single": "https://c.example",
		"mixed":  []any{"https://d.example", 7},
	}

	got, ok := GetStringSliceParam(args, "urls")
	require.True(t, ok)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)

	got, ok = GetStringSliceParam(args, "single")
	require.True(t, ok)
	assert.Equal(t, []string{"https://c.example"}, got)

	_, ok = GetStringSliceParam(args, "mixed")
	assert.False(t, ok, "non-string element rejects the whole slice")
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, 0.001)

	require.NoError(t, limiter.Check("open_url"))
	require.NoError(t, limiter.Check("open_url"))

	err := limiter.Check("open_url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open_url")
}
