package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/repogem/repogem/schema"
)

// Color variables for console output. The mapping follows the report palette:
// underrated picks are the signal, overrated ones the warning.
var (
	UnderratedColor = color.New(color.FgRed, color.Bold)  // flagged as undervalued
	OverratedColor  = color.New(color.FgBlue, color.Bold) // flagged as overvalued
	NormalColor     = color.New(color.FgWhite)            // unflagged baseline
)

// GetPlainLabel returns the plain text category label used for CSV, JSON and
// uncolored table printing.
func GetPlainLabel(cat schema.Category) string {
	return string(cat)
}

// GetColorLabel returns a colored category label for console tables.
func GetColorLabel(cat schema.Category) string {
	switch cat {
	case schema.CategoryUnderrated:
		return UnderratedColor.Sprint(string(cat))
	case schema.CategoryOverrated:
		return OverratedColor.Sprint(string(cat))
	default:
		return NormalColor.Sprint(string(cat))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create %s: %v", ErrOutput, filePath, err)
	}
	return f, nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateName truncates a repo name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis plus content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".repogem_history.db"
	}
	return filepath.Join(homeDir, ".repogem_history.db")
}
