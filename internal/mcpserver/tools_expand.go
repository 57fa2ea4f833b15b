package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/oasexpand/document"
	"github.com/erraggy/oasexpand/expander"
	"github.com/erraggy/oasexpand/internal/fileutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// specInput represents the two ways an OAS spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

type expandInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OAS document to expand"`
	Output         string    `json:"output,omitempty"          jsonschema:"File path to write the expanded document. If omitted the document is returned inline."`
	MaxDepth       int       `json:"max_depth,omitempty"       jsonschema:"Maximum reference-chain depth before truncation (default 10)"`
	KeepComponents bool      `json:"keep_components,omitempty" jsonschema:"Keep the components section instead of removing it after expansion"`
}

type expandOutput struct {
	RefsResolved       int    `json:"refs_resolved"`
	CyclesDetected     int    `json:"cycles_detected"`
	DepthOverflows     int    `json:"depth_overflows"`
	ResolutionFailures int    `json:"resolution_failures"`
	ComponentsPruned   bool   `json:"components_pruned"`
	SourceFormat       string `json:"source_format"`
	WrittenTo          string `json:"written_to,omitempty"`
	Document           string `json:"document,omitempty"`
}

func handleExpand(_ context.Context, _ *mcp.CallToolRequest, input expandInput) (*mcp.CallToolResult, expandOutput, error) {
	opts, err := buildExpanderOptions(input)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	result, err := expander.ExpandWithOptions(opts...)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	output := expandOutput{
		RefsResolved:       result.Stats.RefsResolved,
		CyclesDetected:     result.Stats.CyclesDetected,
		DepthOverflows:     result.Stats.DepthOverflows,
		ResolutionFailures: result.Stats.ResolutionFailures,
		ComponentsPruned:   result.ComponentsPruned,
		SourceFormat:       string(result.SourceFormat),
	}

	// Marshal the expanded document. When writing to a file the output
	// extension picks the format; inline output keeps the source format.
	format := result.SourceFormat
	if input.Output != "" {
		format = document.DetectFormat(input.Output)
	}
	data, err := document.Marshal(result.Document.Root, format)
	if err != nil {
		return errResult(err), expandOutput{}, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), expandOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

// buildExpanderOptions translates the MCP input into expander options,
// handling the two input modes (file, content) and the tuning knobs.
func buildExpanderOptions(input expandInput) ([]expander.Option, error) {
	var opts []expander.Option

	switch {
	case input.Spec.File != "" && input.Spec.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	case input.Spec.File != "":
		opts = append(opts, expander.WithFilePath(input.Spec.File))
	case input.Spec.Content != "":
		doc, err := document.LoadReader(strings.NewReader(input.Spec.Content), document.FormatUnknown, "inline")
		if err != nil {
			return nil, err
		}
		opts = append(opts, expander.WithDocument(doc))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}

	if input.MaxDepth > 0 {
		opts = append(opts, expander.WithMaxDepth(input.MaxDepth))
	}
	if input.KeepComponents {
		opts = append(opts, expander.WithKeepComponents())
	}

	return opts, nil
}
