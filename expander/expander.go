package expander

import (
	"fmt"
	"slices"
	"time"

	"github.com/erraggy/oasexpand/document"
	"go.yaml.in/yaml/v4"
)

// DefaultMaxDepth is the default maximum reference-chain depth. Following a
// $ref increments the depth counter; walking into ordinary mapping or
// sequence children does not. Chains longer than this become placeholder
// nodes instead of recursing further.
const DefaultMaxDepth = 10

// ExpandStats summarizes what happened during one expansion run.
type ExpandStats struct {
	// RefsResolved counts references that resolved and were inlined
	RefsResolved int
	// CyclesDetected counts self-references replaced by cycle placeholders
	CyclesDetected int
	// DepthOverflows counts subtrees truncated at the depth limit
	DepthOverflows int
	// ResolutionFailures counts references replaced by error placeholders
	ResolutionFailures int
}

// Placeholders returns the total number of placeholder nodes produced.
func (s ExpandStats) Placeholders() int {
	return s.CyclesDetected + s.DepthOverflows + s.ResolutionFailures
}

// Result contains the results of an expansion run.
type Result struct {
	// Document is the expanded document; the source document is untouched
	Document *document.Document
	// SourcePath is the path of the source document
	SourcePath string
	// SourceFormat is the format of the source document
	SourceFormat document.Format
	// Stats summarizes reference resolution during the run
	Stats ExpandStats
	// ComponentsPruned is true if a top-level components section was removed
	ComponentsPruned bool
	// Duration is the wall-clock time the run took
	Duration time.Duration
}

// HasPlaceholders returns true if any reference could not be expanded
// normally and was replaced by a placeholder node.
func (r *Result) HasPlaceholders() bool {
	return r.Stats.Placeholders() > 0
}

// Expander expands internal $ref pointers in OpenAPI documents.
type Expander struct {
	// MaxDepth is the maximum reference-chain depth before a subtree is
	// truncated with a placeholder
	MaxDepth int
	// PruneComponents removes the top-level components section after
	// expansion, since inlining makes it unreferenced
	PruneComponents bool
	// Logger receives per-reference diagnostics. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Expander with default settings.
func New() *Expander {
	return &Expander{
		MaxDepth:        DefaultMaxDepth,
		PruneComponents: true,
		Logger:          NopLogger{},
	}
}

// Expand produces a fully expanded copy of doc. The input document is never
// modified. Expansion cannot fail: every unresolvable reference becomes an
// inline placeholder node recorded in Result.Stats.
func (e *Expander) Expand(doc *document.Document) *Result {
	start := time.Now()

	root, stats := e.ExpandNode(doc.Root)

	pruned := false
	if e.PruneComponents {
		pruned = PruneComponents(root)
	}

	return &Result{
		Document: &document.Document{
			Root:   root,
			Format: doc.Format,
			Path:   doc.Path,
		},
		SourcePath:       doc.Path,
		SourceFormat:     doc.Format,
		Stats:            stats,
		ComponentsPruned: pruned,
		Duration:         time.Since(start),
	}
}

// ExpandNode expands a raw node tree against itself as the reference root.
// Unlike Expand it performs no components pruning.
func (e *Expander) ExpandNode(root *yaml.Node) (*yaml.Node, ExpandStats) {
	logger := e.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	r := &run{
		root:     root,
		maxDepth: e.MaxDepth,
		logger:   logger,
	}
	expanded := r.expand(root, "root", 0, make(map[string]struct{}))
	return expanded, r.stats
}

// PruneComponents removes a top-level "components" entry from a document
// root, returning true if one was present. It operates on the root mapping
// only, never recursively.
func PruneComponents(root *yaml.Node) bool {
	if root == nil || root.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "components" {
			root.Content = slices.Delete(root.Content, i, i+2)
			return true
		}
	}
	return false
}

// run holds the per-run state of a single expansion.
type run struct {
	root     *yaml.Node
	maxDepth int
	logger   Logger
	stats    ExpandStats
}

// expand returns a new, fully expanded node for the given input node.
//
// location is a synthetic path string used only for diagnostics. depth is
// the reference-chain length so far. visited holds the references followed
// on the current root-to-node path; every recursive call receives its own
// copy, so cycle detection is per-path and sibling branches never observe
// each other's history.
func (r *run) expand(node *yaml.Node, location string, depth int, visited map[string]struct{}) *yaml.Node {
	if depth > r.maxDepth {
		r.stats.DepthOverflows++
		r.logger.Warn("max expansion depth reached", "location", location, "depth", depth)
		return placeholderNode("Max expansion depth reached at " + location)
	}

	node = deref(node)
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		out := &yaml.Node{Kind: yaml.DocumentNode}
		for _, child := range node.Content {
			out.Content = append(out.Content, r.expand(child, location, depth, copyVisited(visited)))
		}
		return out

	case yaml.MappingNode:
		if ref, isRef := refString(node); isRef {
			return r.expandRef(node, ref, location, depth, visited)
		}
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			out.Content = append(out.Content,
				document.CopyNode(key),
				r.expand(value, location+"."+key.Value, depth, copyVisited(visited)))
		}
		return out

	case yaml.SequenceNode:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, child := range node.Content {
			childLocation := fmt.Sprintf("%s[%d]", location, i)
			out.Content = append(out.Content, r.expand(child, childLocation, depth, copyVisited(visited)))
		}
		return out

	default:
		// Scalars carry no references; copy so the output tree shares
		// nothing with the source.
		return document.CopyNode(node)
	}
}

// expandRef replaces a $ref mapping with its resolved, recursively expanded
// target, or with a placeholder when the reference is circular or cannot be
// resolved.
func (r *run) expandRef(node *yaml.Node, ref, location string, depth int, visited map[string]struct{}) *yaml.Node {
	// The visited set is keyed by reference string. A reference re-entered
	// anywhere along the current root-to-node path is necessarily circular,
	// while the same reference used on a different branch never sees this
	// path's history.
	if _, seen := visited[ref]; seen {
		r.stats.CyclesDetected++
		r.logger.Warn("circular reference detected", "ref", ref, "location", location)
		return placeholderNode("Circular reference: " + ref)
	}

	visited = copyVisited(visited)
	visited[ref] = struct{}{}

	resolved, err := ResolvePointer(ref, r.root)
	if err != nil {
		r.stats.ResolutionFailures++
		r.logger.Warn("reference resolution failed", "ref", ref, "location", location, "error", err)
		return placeholderNode(fmt.Sprintf("Error resolving %s: %s", ref, err.Error()))
	}

	r.stats.RefsResolved++
	r.logger.Debug("resolved reference", "ref", ref, "location", location, "depth", depth)

	// The same target may be referenced from many locations; copy before
	// any sibling overlay or further expansion touches it.
	merged := document.CopyNode(resolved)
	mergeSiblings(merged, node)

	return r.expand(merged, location+"->"+ref, depth+1, visited)
}

// refString extracts the reference string from a mapping containing a $ref
// key. A $ref whose value is not a scalar is reported as an unresolvable
// reference rather than silently treated as a plain mapping.
func refString(mapping *yaml.Node) (string, bool) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "$ref" {
			continue
		}
		value := deref(mapping.Content[i+1])
		if value.Kind != yaml.ScalarNode {
			return "", true
		}
		return value.Value, true
	}
	return "", false
}

// mergeSiblings overlays the non-$ref keys of refNode onto target,
// implementing the OpenAPI ref-override pattern. Keys already present in
// target are replaced in place (keeping their position); new keys are
// appended in their encounter order. Siblings are dropped when the resolved
// target is not a mapping.
func mergeSiblings(target, refNode *yaml.Node) {
	if target.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(refNode.Content); i += 2 {
		key := refNode.Content[i]
		value := refNode.Content[i+1]
		if key.Value == "$ref" {
			continue
		}

		replaced := false
		for j := 0; j+1 < len(target.Content); j += 2 {
			if target.Content[j].Value == key.Value {
				target.Content[j+1] = value
				replaced = true
				break
			}
		}
		if !replaced {
			target.Content = append(target.Content, document.CopyNode(key), value)
		}
	}
}

// placeholderNode builds the synthetic {type: "object", description: ...}
// mapping substituted wherever expansion cannot proceed normally.
func placeholderNode(description string) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			strNode("type"), strNode("object"),
			strNode("description"), strNode(description),
		},
	}
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func copyVisited(visited map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(visited))
	for k := range visited {
		out[k] = struct{}{}
	}
	return out
}
