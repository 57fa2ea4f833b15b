// Package expander resolves and inlines internal $ref pointers in OpenAPI
// documents.
//
// The expander walks a document tree and replaces every mapping that
// contains a $ref key with a deep copy of the referenced fragment,
// recursively expanded. Sibling keys alongside $ref are merged onto the
// resolved target and win on key collision, matching the common OpenAPI
// override pattern. The source tree is never modified; expansion always
// produces a new tree.
//
// # Fault Isolation
//
// A bad reference never aborts the run. Unsupported external references,
// missing pointer targets, traversal through scalars, circular references,
// and reference chains deeper than the configured maximum all become inline
// placeholder objects of the form:
//
//	{type: "object", description: "Error resolving #/...: ..."}
//
// so the output is always a complete, well-formed, reference-free tree.
//
// # Cycle Detection
//
// Cycle detection is scoped to the current path from the root, not global:
// each recursive branch owns an independent copy of the visited set, so the
// same reference reached via different paths is expanded independently,
// each up to its own depth limit. Only following a $ref increments the
// depth counter; walking into ordinary mapping or sequence children does
// not.
//
// # Quick Start
//
//	result, err := expander.ExpandWithOptions(
//		expander.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Resolved %d references\n", result.Stats.RefsResolved)
//
// Or with a reusable Expander instance:
//
//	e := expander.New()
//	e.MaxDepth = 5
//	result := e.Expand(doc)
package expander
