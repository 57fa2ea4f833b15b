package expander

import (
	"fmt"

	"github.com/erraggy/oasexpand/document"
)

// Option is a function that configures an expansion operation
type Option func(*expandConfig) error

// expandConfig holds configuration for an expansion operation
type expandConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	doc      *document.Document

	// Configuration options
	maxDepth       int
	keepComponents bool
	logger         Logger
}

// ExpandWithOptions expands an OpenAPI specification using functional
// options. This combines input source selection and configuration in a
// single call.
//
// Example:
//
//	result, err := expander.ExpandWithOptions(
//	    expander.WithFilePath("openapi.yaml"),
//	    expander.WithMaxDepth(5),
//	)
func ExpandWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("expander: invalid options: %w", err)
	}

	e := &Expander{
		MaxDepth:        cfg.maxDepth,
		PruneComponents: !cfg.keepComponents,
		Logger:          cfg.logger,
	}

	doc := cfg.doc
	if cfg.filePath != nil {
		doc, err = document.Load(*cfg.filePath)
		if err != nil {
			return nil, fmt.Errorf("expander: failed to load specification: %w", err)
		}
	}

	return e.Expand(doc), nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*expandConfig, error) {
	cfg := &expandConfig{
		// Set defaults
		maxDepth: DefaultMaxDepth,
		logger:   NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.doc != nil {
		sources++
	}

	if sources == 0 {
		return nil, fmt.Errorf("no input source specified: use WithFilePath or WithDocument")
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple input sources specified: use only one of WithFilePath or WithDocument")
	}

	return cfg, nil
}

// WithFilePath specifies the file path to expand ("-" reads stdin)
func WithFilePath(path string) Option {
	return func(cfg *expandConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already-loaded document to expand
func WithDocument(doc *document.Document) Option {
	return func(cfg *expandConfig) error {
		if doc == nil {
			return fmt.Errorf("document cannot be nil")
		}
		cfg.doc = doc
		return nil
	}
}

// WithMaxDepth sets the maximum reference-chain depth
func WithMaxDepth(depth int) Option {
	return func(cfg *expandConfig) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be at least 1, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithKeepComponents disables removal of the top-level components section
func WithKeepComponents() Option {
	return func(cfg *expandConfig) error {
		cfg.keepComponents = true
		return nil
	}
}

// WithLogger sets the logger used for per-reference diagnostics
func WithLogger(logger Logger) Option {
	return func(cfg *expandConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
