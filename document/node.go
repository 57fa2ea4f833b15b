package document

import "go.yaml.in/yaml/v4"

// CopyNode returns a deep copy of n, suitable for mutation without affecting
// the original tree. Alias nodes are resolved to a copy of their anchor
// target and anchor names are dropped, so copies never reference shared
// subtrees. Styles and source positions are reset; comments are not carried
// over.
func CopyNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return CopyNode(n.Alias)
	}

	out := &yaml.Node{
		Kind:  n.Kind,
		Tag:   n.Tag,
		Value: n.Value,
	}
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = CopyNode(child)
		}
	}
	return out
}
