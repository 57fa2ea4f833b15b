package expander

import (
	"strconv"
	"strings"

	"github.com/erraggy/oasexpand/oaserrors"
	"go.yaml.in/yaml/v4"
)

// ResolvePointer resolves a JSON-pointer fragment like
// "#/components/schemas/Error" against the document root and returns the
// node at that location.
//
// Only internal fragment pointers are supported: the reference must begin
// with "#/". Anything else (absolute URLs, relative file paths) yields a
// ResolutionError of kind external. Pointer segments are unescaped per
// RFC 6901: "~1" becomes "/" and then "~0" becomes "~", in that order.
//
// The returned node is the node stored in the document itself, not a copy;
// callers must deep-copy it before mutation.
func ResolvePointer(ref string, root *yaml.Node) (*yaml.Node, error) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, &oaserrors.ResolutionError{
			Ref:  ref,
			Kind: oaserrors.KindExternal,
		}
	}

	current := deref(root)
	for _, raw := range strings.Split(ref[2:], "/") {
		segment := unescapeJSONPointer(raw)

		switch current.Kind {
		case yaml.MappingNode:
			next := mappingValue(current, segment)
			if next == nil {
				return nil, &oaserrors.ResolutionError{
					Ref:     ref,
					Segment: segment,
					Kind:    oaserrors.KindMissingTarget,
					Message: "missing key",
				}
			}
			current = deref(next)

		case yaml.SequenceNode:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, &oaserrors.ResolutionError{
					Ref:     ref,
					Segment: segment,
					Kind:    oaserrors.KindMissingTarget,
					Message: "array index must be a non-negative integer",
				}
			}
			if index < 0 || index >= len(current.Content) {
				return nil, &oaserrors.ResolutionError{
					Ref:     ref,
					Segment: segment,
					Kind:    oaserrors.KindMissingTarget,
					Message: "array index out of bounds (length " + strconv.Itoa(len(current.Content)) + ")",
				}
			}
			current = deref(current.Content[index])

		default:
			return nil, &oaserrors.ResolutionError{
				Ref:     ref,
				Segment: segment,
				Kind:    oaserrors.KindTraverse,
				Message: "cannot descend into a scalar value",
			}
		}
	}

	return current, nil
}

// unescapeJSONPointer reverses RFC 6901 escape sequences in a pointer
// segment. The order matters: "~1" first, then "~0", so that "~01" decodes
// to "~1" rather than "/".
func unescapeJSONPointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}

// deref follows an alias node to its anchor target.
func deref(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// mappingValue returns the value node for key in a mapping, or nil if the
// key is absent.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
