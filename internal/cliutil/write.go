// Package cliutil holds small helpers shared by the CLI command handlers.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w, reporting any write failure on
// stderr instead of returning it. Progress and usage output is best-effort;
// a broken pipe on stdout should not abort an expansion run.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
