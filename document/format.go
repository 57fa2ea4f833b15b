package document

import (
	"bytes"
	"path/filepath"
)

// Format identifies the serialization format of a document.
type Format string

const (
	// FormatJSON is pretty-printed JSON with 2-space indentation.
	FormatJSON Format = "json"
	// FormatYAML is block-style YAML with 2-space indentation.
	FormatYAML Format = "yaml"
	// FormatUnknown means the format could not be determined from content.
	FormatUnknown Format = "unknown"
)

// StdinFilePath is the special file path used to indicate stdin or stdout.
const StdinFilePath = "-"

// DetectFormat detects the format from a file path by extension.
// A .json extension selects JSON; every other extension selects YAML.
func DetectFormat(path string) Format {
	if filepath.Ext(path) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// DetectFormatFromContent attempts to detect the format from content bytes.
// JSON documents start with '{' or '[' after leading whitespace, while YAML
// documents do not. Used when no file extension is available (stdin).
func DetectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")

	if len(trimmed) == 0 {
		return FormatUnknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}

	return FormatYAML
}
