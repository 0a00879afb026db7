// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	slog.Info("browser detected", "token", "chrome")

	out := buf.String()
	if !strings.Contains(out, "browser detected") || !strings.Contains(out, "token=chrome") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestSetupLoggerStructuredFormat(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	t.Cleanup(func() { SetupLogger(false, false) })

	slog.Info("browser detected", "token", "chrome")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "browser detected" || record["token"] != "chrome" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestDebugLevelGating(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	slog.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output emitted without debug mode: %q", buf.String())
	}
	if IsDebugEnabled() {
		t.Error("IsDebugEnabled() = true, want false")
	}

	SetupLoggerWithWriter(&buf, true, false)
	slog.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug output missing: %q", buf.String())
	}
	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled() = false, want true")
	}
}

func TestEnvDebugOverride(t *testing.T) {
	t.Setenv(EnvDebug, "true")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Cleanup(func() { SetupLogger(false, false) })

	if !IsDebugEnabled() {
		t.Errorf("%s=true should enable debug logging", EnvDebug)
	}
}
