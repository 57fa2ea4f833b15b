package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oasexpand"
	"github.com/erraggy/oasexpand/cmd/expand-refs/commands"
)

// Exit codes. Argument mistakes and fatal faults (missing files, malformed
// documents) are reported distinctly; unresolvable references never cause a
// non-zero exit since they are inlined as placeholders.
const (
	exitOK    = 0
	exitUsage = 1
	exitFatal = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "version", "-v", "--version":
		fmt.Printf("expand-refs v%s\n", oasexpand.Version())
	case "help", "-h", "--help":
		printUsage()
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCode(err))
		}
	default:
		if err := commands.HandleExpand(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitCode(err))
		}
	}

	os.Exit(exitOK)
}

func exitCode(err error) int {
	var usageErr *commands.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitFatal
}

func printUsage() {
	fmt.Println(`expand-refs - Expand internal $ref pointers in OpenAPI specifications

Usage:
  expand-refs [flags] <input> <output>
  expand-refs <command>

Commands:
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Formats are selected by file extension: .json is JSON, anything else is
YAML. Input and output formats may differ. Use '-' to read stdin or write
stdout.

Examples:
  expand-refs openapi.yaml expanded.yaml
  expand-refs openapi.json expanded.json
  expand-refs --max-depth 5 openapi.yaml expanded.json
  cat openapi.yaml | expand-refs --quiet - expanded.yaml

Run 'expand-refs --help' after flags for more details on the primary form.`)
}
