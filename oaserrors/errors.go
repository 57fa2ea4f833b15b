package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResolution indicates a reference resolution failure of any kind.
	ErrResolution = errors.New("resolution error")

	// ErrExternalRef indicates a reference to an external file or URL,
	// which oasexpand does not follow.
	ErrExternalRef = errors.New("external reference not supported")

	// ErrMissingTarget indicates the pointer names a key or index that
	// does not exist in the document.
	ErrMissingTarget = errors.New("reference target not found")

	// ErrTraverse indicates the pointer attempted to descend through a
	// scalar value.
	ErrTraverse = errors.New("cannot traverse reference path")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ResolutionKind classifies why a $ref failed to resolve.
type ResolutionKind string

const (
	// KindExternal marks references to external files or URLs.
	KindExternal ResolutionKind = "external"
	// KindMissingTarget marks pointers to keys or indexes that do not exist.
	KindMissingTarget ResolutionKind = "missing"
	// KindTraverse marks pointers that attempt to descend through a scalar.
	KindTraverse ResolutionKind = "traverse"
)

// ResolutionError represents a failure to resolve a $ref pointer.
// The expander converts every ResolutionError into an inline placeholder
// node; these errors never propagate past a single reference.
type ResolutionError struct {
	// Ref is the full reference string that failed to resolve
	Ref string
	// Segment is the pointer segment where resolution stopped (may be empty)
	Segment string
	// Kind classifies the failure
	Kind ResolutionKind
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	var msg string
	switch e.Kind {
	case KindExternal:
		msg = "external reference not supported"
	case KindMissingTarget:
		msg = "reference target not found"
	case KindTraverse:
		msg = "cannot traverse reference path"
	default:
		msg = "resolution error"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (at segment %q)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrResolution, and the kind-specific sentinel when the
// corresponding Kind is set.
func (e *ResolutionError) Is(target error) bool {
	if target == ErrResolution {
		return true
	}
	switch target {
	case ErrExternalRef:
		return e.Kind == KindExternal
	case ErrMissingTarget:
		return e.Kind == KindMissingTarget
	case ErrTraverse:
		return e.Kind == KindTraverse
	}
	return false
}

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ResourceLimitError represents a resource limit being exceeded.
type ResourceLimitError struct {
	// ResourceType identifies the limited resource (e.g., "file_size")
	ResourceType string
	// Limit is the configured maximum
	Limit int64
	// Actual is the observed value that exceeded the limit
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit %d, actual %d)", e.Limit, e.Actual)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
