// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package urlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwayhq/pathway/fsys"
)

func TestValidate(t *testing.T) {
	fs := fsys.NewMemFS()
	fs.AddFile("/etc/hosts", []byte("127.0.0.1 localhost"))

	tests := []struct {
		name       string
		input      string
		wantScheme string
		wantErr    bool
	}{
		{"https", "https://example.com", "https", false},
		{"http localhost with port", "http://localhost:3000/api", "http", false},
		{"existing file url", "file:///etc/hosts", "file", false},
		{"bare domain defaults to https", "example.com", "https", false},
		{"domain with path", "example.com/docs", "https", false},
		{"absolute path becomes file url", "/tmp/test.html", "file", false},
		{"javascript rejected", "javascript:alert(1)", "", true},
		{"data rejected", "data:text/html,<h1>x</h1>", "", true},
		{"ftp rejected", "ftp://example.com", "", true},
		{"unknown scheme rejected", "gopher://example.com", "", true},
		{"empty input", "", "", true},
		{"whitespace only", "   ", "", true},
		{"undetectable input", "no-scheme-no-dot", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input, fs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheme, got.Scheme)
			assert.Equal(t, tt.input, got.Original)
			assert.NotEmpty(t, got.Normalized)
		})
	}
}

func TestValidateAutoDetectDomain(t *testing.T) {
	got, err := Validate("example.com", fsys.NewMemFS())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Normalized)
}

func TestValidateRelativePath(t *testing.T) {
	got, err := Validate("./relative/page.html", fsys.NewMemFS())
	require.NoError(t, err)
	assert.Equal(t, "file", got.Scheme)
	assert.True(t, strings.HasPrefix(got.Normalized, "file:///"), "normalized to an absolute file url: %s", got.Normalized)
	assert.NotContains(t, got.Normalized, "./")
}

func TestValidateRejectsTraversal(t *testing.T) {
	fs := fsys.NewMemFS()
	for _, input := range []string{
		"file:///../etc/passwd",
		"file:///tmp/../../../etc/passwd",
		"file:///%2E%2E/etc/passwd",
		"file:///%2e%2e%2f../etc/passwd",
	} {
		_, err := Validate(input, fs)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}

func TestValidateAllowsConsecutiveDotsInName(t *testing.T) {
	fs := fsys.NewMemFS()
	fs.AddFile("/tmp/a....txt", []byte("x"))

	got, err := Validate("file:///tmp/a....txt", fs)
	require.NoError(t, err, "dots inside a file name are not traversal")
	assert.Equal(t, "file", got.Scheme)
	assert.Empty(t, got.Warning)
}

func TestValidateMissingFileWarns(t *testing.T) {
	got, err := Validate("file:///nonexistent", fsys.NewMemFS())
	require.NoError(t, err, "a missing file is a warning, not an error")
	assert.Contains(t, got.Warning, "file not found")
}

func TestValidateLengthLimit(t *testing.T) {
	_, err := Validate("https://example.com/"+strings.Repeat("a", MaxURLLength), fsys.NewMemFS())
	assert.Error(t, err)
}
