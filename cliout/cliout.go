// Copyright (c) Pathway contributors. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"
)

// ANSI styling codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols with ASCII fallbacks for consoles that cannot render them.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolDot     = "•"

	asciiCheck   = "[+]"
	asciiCross   = "[-]"
	asciiWarning = "[!]"
	asciiDot     = "*"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !detectColorSupport()
)

var supportsUnicode = detectUnicodeSupport()

// detectColorSupport honors NO_COLOR and requires stdout to be a terminal.
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// detectUnicodeSupport assumes Unicode everywhere except the legacy Windows
// console, where only modern terminal hosts render it reliably.
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("TERM") != ""
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format: the data object as JSON, or
// the formatter callback for human output.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

func colorize(color, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return color + s + Reset
}

func symbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// Success prints a message with a green check.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightGreen, symbol(SymbolCheck, asciiCheck)), fmt.Sprintf(format, args...))
}

// Error prints a message with a red cross.
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", colorize(BrightRed, symbol(SymbolCross, asciiCross)), fmt.Sprintf(format, args...))
}

// Warning prints a message with a yellow warning sign.
func Warning(format string, args ...any) {
	fmt.Printf("%s  %s\n", colorize(BrightYellow, symbol(SymbolWarning, asciiWarning)), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item.
func Bullet(format string, args ...any) {
	fmt.Printf("  %s %s\n", symbol(SymbolDot, asciiDot), fmt.Sprintf(format, args...))
}

// Item prints an indented item.
func Item(format string, args ...any) {
	fmt.Printf("   %s\n", fmt.Sprintf(format, args...))
}

// Label prints an indented label/value pair.
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Plain prints unformatted text followed by a newline.
func Plain(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Newline prints a blank line.
func Newline() {
	fmt.Println()
}

// Emphasize returns bolded text.
func Emphasize(format string, args ...any) string {
	return colorize(Bold, fmt.Sprintf(format, args...))
}

// Muted returns dimmed text.
func Muted(format string, args ...any) string {
	return colorize(Dim, fmt.Sprintf(format, args...))
}

// TableRow is one table row keyed by column header.
type TableRow map[string]string

// Table prints a padded table with the given column headers.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s  ", colorize(Bold, fmt.Sprintf("%-*s", widths[header], header)))
	}
	fmt.Println()

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
