package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Marshal serializes a node tree in the given format.
//
// JSON output is pretty-printed with 2-space indentation, with mapping keys
// in their original encounter order. YAML output uses block style, 2-space
// indentation, no alias emission, and the status-code quoting policy
// described in the package documentation. The input tree is never modified;
// serialization operates on an internal normalized copy.
func Marshal(root *yaml.Node, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return marshalJSON(root)
	default:
		return marshalYAML(root)
	}
}

func marshalYAML(root *yaml.Node) ([]byte, error) {
	// CopyNode already folds aliases and clears styles; the quoting pass
	// then forces double quotes where the policy requires them.
	prepared := CopyNode(root)
	applyQuoting(prepared)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(prepared); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// applyQuoting forces double quotes on string scalars that are empty or
// exactly three ASCII digits (HTTP status codes), matching common OpenAPI
// style. All other scalars keep default styling.
func applyQuoting(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && needsDoubleQuotes(n.Value) {
		n.Style = yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		applyQuoting(child)
	}
}

func needsDoubleQuotes(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 3 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func marshalJSON(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, root); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return out.Bytes(), nil
}

// writeNodeJSON writes a node tree to buf as compact JSON, preserving the
// key order from the tree.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])

	case yaml.AliasNode:
		return writeNodeJSON(buf, n.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			// JSON object keys are always strings, whatever the YAML key tag
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return fmt.Errorf("encoding JSON key: %w", err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, n)

	default:
		return fmt.Errorf("encoding JSON: unsupported node kind %d", n.Kind)
	}
}

// writeScalarJSON converts a single YAML scalar to its JSON representation
// based on the resolved tag.
func writeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Tag {
	case "!!null", "":
		buf.WriteString("null")
		return nil

	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return writeStringJSON(buf, n.Value)
		}
		buf.WriteString(strconv.FormatBool(b))
		return nil

	case "!!int":
		// A decimal literal is already a valid JSON number; hex/octal/binary
		// YAML literals must be converted.
		if json.Valid([]byte(n.Value)) {
			buf.WriteString(n.Value)
			return nil
		}
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return writeStringJSON(buf, n.Value)
		}
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil

	case "!!float":
		if json.Valid([]byte(n.Value)) {
			buf.WriteString(n.Value)
			return nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return writeStringJSON(buf, n.Value)
		}
		// JSON has no representation for infinities or NaN
		encoded, err := json.Marshal(f)
		if err != nil {
			return writeStringJSON(buf, n.Value)
		}
		buf.Write(encoded)
		return nil

	default:
		// !!str and any other tag (timestamps, binary) encode as strings
		return writeStringJSON(buf, n.Value)
	}
}

func writeStringJSON(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding JSON string: %w", err)
	}
	buf.Write(encoded)
	return nil
}
