package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasexpand/internal/fileutil"
	"github.com/erraggy/oasexpand/oaserrors"
	"go.yaml.in/yaml/v4"
)

// MaxFileSize is the maximum size (in bytes) allowed for input files.
// This prevents resource exhaustion from loading arbitrarily large files.
// Set to 10MB which should be sufficient for most OpenAPI documents.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Document is a parsed OpenAPI document held as an order-preserving tree.
type Document struct {
	// Root is the document root node (the top-level mapping for well-formed
	// OpenAPI documents, but any YAML/JSON value is accepted)
	Root *yaml.Node
	// Format is the detected source format
	Format Format
	// Path is the source file path, or "-" for stdin
	Path string
}

// Load reads and parses the document at path. The format is selected by
// file extension: .json is parsed as JSON, anything else as YAML.
// The special path "-" reads from stdin with content-based format detection.
func Load(path string) (*Document, error) {
	if path == StdinFilePath {
		return LoadReader(os.Stdin, FormatUnknown, StdinFilePath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        MaxFileSize,
			Actual:       int64(len(data)),
			Message:      fmt.Sprintf("input file %s too large", path),
		}
	}

	return Parse(data, DetectFormat(path), path)
}

// LoadReader reads and parses a document from r. If format is FormatUnknown
// it is detected from the content. The path is recorded for diagnostics only.
func LoadReader(r io.Reader, format Format, path string) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        MaxFileSize,
			Actual:       int64(len(data)),
			Message:      "input too large",
		}
	}
	if format == FormatUnknown {
		format = DetectFormatFromContent(data)
		if format == FormatUnknown {
			format = FormatYAML
		}
	}
	return Parse(data, format, path)
}

// Parse parses raw document bytes in the given format.
//
// JSON input is validated with encoding/json first, then decoded with the
// YAML parser so both formats produce the same order-preserving node tree.
// YAML decoding uses safe-load semantics: no custom tag execution.
func Parse(data []byte, format Format, path string) (*Document, error) {
	if format == FormatJSON && !json.Valid(data) {
		return nil, &oaserrors.ParseError{
			Path:    path,
			Message: "invalid JSON syntax",
		}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    path,
			Message: fmt.Sprintf("malformed %s document", format),
			Cause:   err,
		}
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &oaserrors.ParseError{
				Path:    path,
				Message: "empty document",
			}
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, &oaserrors.ParseError{
			Path:    path,
			Message: "empty document",
		}
	}

	return &Document{Root: node, Format: format, Path: path}, nil
}

// Save serializes doc to path. The output format is selected by the output
// file extension, independent of the input format, so a YAML document may be
// written as JSON and vice versa. The special path "-" writes to stdout.
func Save(doc *Document, path string) error {
	format := DetectFormat(path)
	data, err := Marshal(doc.Root, format)
	if err != nil {
		return err
	}

	if path == StdinFilePath {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
