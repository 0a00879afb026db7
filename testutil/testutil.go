// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution. The original
// stdout is always restored, even if fn returns an error; the error itself
// is logged, not failed on, so callers can assert on partial output.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	if fnErr != nil {
		t.Logf("captured function error: %v", fnErr)
	}
	return output
}
