// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package urlutil

import (
	"fmt"
	neturl "net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pathwayhq/pathway/fsys"
)

// MaxURLLength is the practical upper bound accepted for a single URL.
const MaxURLLength = 2048

// dangerousSchemes are rejected explicitly rather than falling through the
// allow-list, so the error names the scheme the user tried.
var dangerousSchemes = map[string]bool{
	"javascript": true,
	"data":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
	"ftp":        true,
	"sftp":       true,
	"ssh":        true,
	"telnet":     true,
}

var supportedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
}

// Validated is the result of a successful validation. Normalized is the form
// safe to pass to a browser command line; Warning carries non-fatal findings
// such as a file URL pointing at a missing file.
type Validated struct {
	Original   string `json:"original"`
	URL        string `json:"url"`
	Normalized string `json:"normalized"`
	Scheme     string `json:"scheme"`
	Warning    string `json:"warning,omitempty"`
}

// Validate checks a single user-supplied URL and returns its normalized
// form. Input without a scheme is auto-detected: absolute or relative paths
// become file URLs, anything that looks like a host name becomes https.
//
// Example:
//
//	v, err := urlutil.Validate("example.com", fsys.OS{})
//	// v.Normalized == "https://example.com"
func Validate(input string, fs fsys.FileSystem) (Validated, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Validated{}, fmt.Errorf("url cannot be empty")
	}
	if len(input) > MaxURLLength {
		return Validated{}, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	// Traversal in a raw file URL is rejected before any normalization can
	// smooth it over.
	if strings.HasPrefix(input, "file://") && containsTraversal(input) {
		return Validated{}, fmt.Errorf("path traversal rejected: %s", input)
	}

	parsed, err := neturl.Parse(input)
	if err != nil || parsed.Scheme == "" {
		withScheme, derr := autoDetectScheme(input)
		if derr != nil {
			return Validated{}, derr
		}
		parsed, err = neturl.Parse(withScheme)
		if err != nil {
			return Validated{}, fmt.Errorf("invalid url %q: %w", input, err)
		}
	}

	scheme := strings.ToLower(parsed.Scheme)
	if dangerousSchemes[scheme] {
		return Validated{}, fmt.Errorf("refusing dangerous scheme %q", scheme)
	}
	if !supportedSchemes[scheme] {
		return Validated{}, fmt.Errorf("unsupported scheme %q", scheme)
	}

	v := Validated{
		Original:   input,
		URL:        parsed.String(),
		Normalized: parsed.String(),
		Scheme:     scheme,
	}

	if scheme == "file" {
		normalized, warning, ferr := normalizeFileURL(parsed, fs)
		if ferr != nil {
			return Validated{}, ferr
		}
		v.Normalized = normalized
		v.Warning = warning
	}

	return v, nil
}

// normalizeFileURL resolves a file URL to an absolute cleaned path, checks
// it for traversal, and warns when the target does not exist. A missing
// file is not an error: the browser will render its own message.
func normalizeFileURL(u *neturl.URL, fs fsys.FileSystem) (normalized, warning string, err error) {
	path := u.Path
	if path == "" {
		return "", "", fmt.Errorf("invalid file url: %s", u.String())
	}
	if containsTraversal(path) {
		return "", "", fmt.Errorf("path traversal rejected: %s", path)
	}

	abs, aerr := filepath.Abs(filepath.Clean(path))
	if aerr != nil {
		return "", "", fmt.Errorf("invalid file url %q: %w", u.String(), aerr)
	}
	if !fs.Exists(abs) {
		warning = fmt.Sprintf("file not found: %s", abs)
	}
	return "file://" + filepath.ToSlash(abs), warning, nil
}

// autoDetectScheme supplies a scheme for bare input: path-like strings
// become absolute file URLs, host-like strings default to https.
func autoDetectScheme(input string) (string, error) {
	switch {
	case strings.HasPrefix(input, "/"), strings.HasPrefix(input, "./"), strings.HasPrefix(input, "../"):
		abs := input
		if !filepath.IsAbs(input) {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("resolve relative path %q: %w", input, err)
			}
			abs = filepath.Join(wd, input)
		}
		return "file://" + filepath.ToSlash(filepath.Clean(abs)), nil
	case !strings.Contains(input, "://") && (strings.Contains(input, ".") || strings.Contains(input, "localhost")):
		return "https://" + input, nil
	default:
		return "", fmt.Errorf("cannot auto-detect scheme for %q", input)
	}
}

// containsTraversal reports whether the path carries a ".." segment, plain
// or percent-encoded, in either separator style. Only whole segments count:
// a file legitimately named "a....txt" is not an escape.
func containsTraversal(path string) bool {
	p := strings.ToLower(path)
	if strings.Contains(p, "%2e%2e") {
		return true
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
