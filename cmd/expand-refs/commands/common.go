// Package commands provides CLI command handlers for expand-refs.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasexpand/document"
	"github.com/erraggy/oasexpand/internal/cliutil"
)

// UsageError marks errors caused by incorrect invocation (wrong argument
// count, bad flag values) as opposed to fatal runtime faults. The main
// package maps these to a distinct exit code.
type UsageError struct {
	Message string
}

// Error returns the usage problem description.
func (e *UsageError) Error() string {
	return e.Message
}

// ValidateOutputPath checks if the output path is safe to write to.
func ValidateOutputPath(outputPath, inputPath string) error {
	if outputPath == document.StdinFilePath || inputPath == document.StdinFilePath {
		return nil
	}

	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", inputPath, err)
	}

	if absOutputPath == absInputPath {
		return &UsageError{Message: fmt.Sprintf("output file %s would overwrite input file %s", outputPath, inputPath)}
	}

	// Warn (but don't error) when the output file already exists
	if _, err := os.Stat(absOutputPath); err == nil {
		cliutil.Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}
