package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasexpand/internal/cliutil"
	"github.com/erraggy/oasexpand/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: expand-refs mcp\n\n")
		cliutil.Writef(fs.Output(), "Run expand-refs as an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes an 'expand' tool that inlines internal $ref pointers\n")
		cliutil.Writef(fs.Output(), "in OpenAPI documents provided by file path or inline content.\n")
	}

	return fs
}

// HandleMCP executes the mcp command: it serves MCP over stdio until the
// client disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Message: err.Error()}
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return &UsageError{Message: "mcp command takes no arguments"}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
