// Package oasexpand provides tools for expanding internal $ref pointers in
// OpenAPI Specification (OAS) documents.
//
// oasexpand resolves every internal JSON-pointer reference (#/components/...)
// in a document, inlining a deep copy of each referenced fragment until the
// document is fully self-contained, then removes the now-unused components
// section. Circular references and runaway reference chains are replaced by
// inline placeholder objects rather than aborting the run, so one bad
// reference never costs you the whole document.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - expander: Resolve and inline internal $ref pointers with cycle
//     detection and depth limiting
//   - document: Load and save OpenAPI documents as order-preserving trees,
//     with format detection by file extension (JSON or YAML)
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasexpand
//
// # Quick Start
//
// Expand a specification file:
//
//	import "github.com/erraggy/oasexpand/expander"
//
//	result, err := expander.ExpandWithOptions(
//		expander.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Expanded %d references\n", result.Stats.RefsResolved)
//
// Or use a reusable Expander instance:
//
//	import (
//		"github.com/erraggy/oasexpand/document"
//		"github.com/erraggy/oasexpand/expander"
//	)
//
//	doc, err := document.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	e := expander.New()
//	result := e.Expand(doc)
//	if err := document.Save(result.Document, "expanded.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
// # CLI Usage
//
// The expand-refs command wraps the library:
//
//	expand-refs openapi.yaml expanded.yaml
//	expand-refs openapi.json expanded.json
//
// Input and output formats are selected by file extension: .json is treated
// as JSON, anything else as YAML. The two formats may be mixed freely, so the
// tool also works as a JSON/YAML converter.
//
// # Reference Handling
//
// Only internal references of the form #/path/to/node are supported.
// References to external files or URLs are reported inline as placeholder
// objects; they are never fetched. Sibling keys alongside $ref are merged
// onto the resolved target and win on key collision, matching the common
// OpenAPI override pattern.
package oasexpand
