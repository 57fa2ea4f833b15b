package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/oasexpand/document"
	"github.com/erraggy/oasexpand/expander"
	"github.com/erraggy/oasexpand/internal/cliutil"
)

// ExpandFlags contains flags for the primary expand form
type ExpandFlags struct {
	MaxDepth       int
	KeepComponents bool
	Quiet          bool
	Verbose        bool
}

// SetupExpandFlags creates and configures a FlagSet for the primary expand
// form. Returns the FlagSet and an ExpandFlags struct with bound flag
// variables.
func SetupExpandFlags() (*flag.FlagSet, *ExpandFlags) {
	fs := flag.NewFlagSet("expand-refs", flag.ContinueOnError)
	flags := &ExpandFlags{}

	fs.IntVar(&flags.MaxDepth, "max-depth", expander.DefaultMaxDepth, "maximum reference-chain depth before truncation")
	fs.BoolVar(&flags.KeepComponents, "keep-components", false, "keep the components section instead of removing it")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no progress output")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no progress output")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log per-reference diagnostics to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: expand-refs [flags] <input> <output>\n\n")
		cliutil.Writef(fs.Output(), "Expand all internal $ref pointers in an OpenAPI specification,\n")
		cliutil.Writef(fs.Output(), "inlining referenced fragments until the document is self-contained.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nFormats:\n")
		cliutil.Writef(fs.Output(), "  - Selected by file extension: .json is JSON, anything else is YAML\n")
		cliutil.Writef(fs.Output(), "  - Input and output formats may differ\n")
		cliutil.Writef(fs.Output(), "  - Use '-' to read from stdin or write to stdout\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  expand-refs openapi.yaml expanded.yaml\n")
		cliutil.Writef(fs.Output(), "  expand-refs openapi.json expanded.json\n")
		cliutil.Writef(fs.Output(), "  expand-refs --max-depth 5 --keep-components openapi.yaml expanded.json\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | expand-refs -q - expanded.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Only internal references (#/path/to/node) are resolved\n")
		cliutil.Writef(fs.Output(), "  - External file and URL references become inline placeholders\n")
		cliutil.Writef(fs.Output(), "  - Circular references and over-deep chains become inline placeholders\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Expansion successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid arguments\n")
		cliutil.Writef(fs.Output(), "  2    Input could not be read or parsed, or output could not be written\n")
	}

	return fs, flags
}

// HandleExpand executes the primary expand form.
func HandleExpand(args []string) error {
	fs, flags := SetupExpandFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Message: err.Error()}
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return &UsageError{Message: "expand-refs requires exactly two arguments: <input> <output>"}
	}

	inputPath := fs.Arg(0)
	outputPath := fs.Arg(1)

	if flags.MaxDepth < 1 {
		return &UsageError{Message: fmt.Sprintf("max-depth must be at least 1, got %d", flags.MaxDepth)}
	}

	if err := ValidateOutputPath(outputPath, inputPath); err != nil {
		return err
	}

	e := expander.New()
	e.MaxDepth = flags.MaxDepth
	e.PruneComponents = !flags.KeepComponents
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		e.Logger = expander.NewSlogAdapter(slog.New(handler))
	}

	progress := func(format string, args ...any) {
		if !flags.Quiet {
			cliutil.Writef(os.Stdout, format, args...)
		}
	}

	startTime := time.Now()

	progress("Loading %s...\n", inputPath)
	doc, err := document.Load(inputPath)
	if err != nil {
		return err
	}

	progress("Expanding all $ref pointers (max depth: %d)...\n", e.MaxDepth)
	result := e.Expand(doc)

	if result.ComponentsPruned {
		progress("Removing unused components section...\n")
	}

	progress("Saving to %s...\n", outputPath)
	if err := document.Save(result.Document, outputPath); err != nil {
		return err
	}

	progress("✓ Done! Resolved %d references in %v\n", result.Stats.RefsResolved, time.Since(startTime).Round(time.Millisecond))
	if result.HasPlaceholders() {
		cliutil.Writef(os.Stderr, "Warning: %d reference(s) replaced by placeholders (%d unresolvable, %d circular, %d over depth limit)\n",
			result.Stats.Placeholders(), result.Stats.ResolutionFailures, result.Stats.CyclesDetected, result.Stats.DepthOverflows)
	}

	return nil
}
