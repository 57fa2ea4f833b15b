// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasexpand capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasexpand"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasexpand MCP server — expands internal $ref pointers in OpenAPI specs.

The expand tool inlines every internal JSON-pointer reference (#/components/...)
until the document is self-contained, then removes the unused components
section. Circular references, chains deeper than the depth limit, and
unresolvable references become inline placeholder objects; one bad reference
never fails the whole document. External file and URL references are not
followed and are reported as placeholders.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasexpand", Version: oasexpand.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "expand",
		Description: "Expand all internal $ref pointers in an OpenAPI Specification document, inlining referenced fragments until the document is self-contained, then dropping the unused components section. Returns resolution statistics and the expanded document. Use output to write to a file instead of returning inline. Circular and unresolvable references become inline placeholder objects rather than errors.",
	}, handleExpand)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
