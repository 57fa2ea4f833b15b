// Package oaserrors provides structured error types for oasexpand.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and structural issues
//   - ResolutionError: $ref resolution failures (external refs, missing
//     targets, attempts to traverse through scalars)
//   - ResourceLimitError: Resource exhaustion (file size limits)
//
// # Two Error Tiers
//
// Resolution errors are localized: the expander catches every
// ResolutionError and converts it to an inline placeholder node, so a bad
// reference never aborts the document. Parse and resource-limit errors are
// fatal: they indicate the tool cannot proceed at all and propagate to the
// caller.
//
// # Usage with errors.Is
//
//	_, err := expander.ResolvePointer("pets.yaml#/Pet", root)
//	if errors.Is(err, oaserrors.ErrExternalRef) {
//		// reference points outside this document
//	}
//
// # Usage with errors.As
//
//	var resErr *oaserrors.ResolutionError
//	if errors.As(err, &resErr) {
//		fmt.Println(resErr.Ref, resErr.Kind)
//	}
package oaserrors
