package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the serialization format of a report document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatJUnit is write-only: the keyword tree cannot be rebuilt from a test suite.
	FormatJUnit Format = "junit"
)

// ParseFormat parses the value of the "--format" flag. An empty value means JSON.
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	case string(FormatJUnit):
		return FormatJUnit, nil
	default:
		return "", fmt.Errorf("\"%s\" is not a valid output format", format)
	}
}

// FormatFromPath infers the format of a document from its extension, JSON being the default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatJUnit
	default:
		return FormatJSON
	}
}
