// SPDX-License-Identifier: MIT

package matio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a matrix encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user supplied name ("txt", "CSV", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "dat", "ascii":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("matio: %q: %w", name, ErrUnknownFormat)
}

// FormatFromPath selects a Format from the file extension of path.
// Paths without an extension default to FormatText.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatText, nil
	}

	return ParseFormat(ext)
}
