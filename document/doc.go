// Package document loads and saves OpenAPI documents as order-preserving
// trees.
//
// Documents are represented as yaml.Node trees, which keep mapping keys in
// their original encounter order for both YAML and JSON sources. The package
// detects formats by file extension: a .json extension selects JSON, any
// other extension selects YAML. JSON input is validated with encoding/json
// and then decoded with the YAML parser (JSON is a subset of YAML 1.2), so
// both formats share one tree representation.
//
// On output, JSON is pretty-printed with 2-space indentation and YAML is
// emitted in block style with anchors and aliases fully folded: every
// repeated subtree is re-emitted rather than referenced. String scalars that
// are empty or exactly three digits (HTTP status codes like "200") are
// double-quoted; all other strings follow default YAML quoting rules.
//
// The special path "-" reads from stdin or writes to stdout.
package document
