package arxerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPathResolution indicates an absolute path could not be computed.
	ErrPathResolution = errors.New("path resolution error")

	// ErrMissingContainer indicates a required container is absent and
	// cannot be synthesized.
	ErrMissingContainer = errors.New("missing required container")

	// ErrPrefixNotFound indicates a prefix substitution found no match.
	ErrPrefixNotFound = errors.New("prefix not found")

	// ErrRelocation indicates a strict relocation failure.
	ErrRelocation = errors.New("relocation error")

	// ErrParse indicates a failure to read the external tree format.
	ErrParse = errors.New("parse error")

	// ErrPlan indicates an invalid merge plan or configuration.
	ErrPlan = errors.New("plan error")
)

// PathResolutionError reports that a node's absolute path could not be
// computed because the parent index has no entry for an ancestor. This
// happens when a node was attached by raw tree manipulation instead of the
// engine's attach primitive; it is always a programming error and is never
// retried.
type PathResolutionError struct {
	// Tag is the tag of the node whose path was requested
	Tag string
	// Name is the node's local name ("" if anonymous)
	Name string
	// SourceFile identifies the document the node belongs to
	SourceFile string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *PathResolutionError) Error() string {
	msg := "path resolution error"
	if e.Tag != "" {
		msg += " for <" + e.Tag + ">"
	}
	if e.Name != "" {
		msg += " '" + e.Name + "'"
	}
	if e.SourceFile != "" {
		msg += " in " + e.SourceFile
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as PathResolutionError has no underlying cause.
func (e *PathResolutionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathResolutionError) Is(target error) bool {
	return target == ErrPathResolution
}

// MissingContainerError reports that a destination tree violates a hard
// structural precondition: a required container is absent and the container
// schema provides no factory to synthesize it. Fatal to the merge step.
type MissingContainerError struct {
	// Tag is the tag of the missing container
	Tag string
	// ParentPath is the absolute path of the node that should hold it
	ParentPath string
	// SourceFile identifies the document being merged when the condition hit
	SourceFile string
	// Container names the logical package/container being merged ("" if unknown)
	Container string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *MissingContainerError) Error() string {
	msg := "missing required container"
	if e.Tag != "" {
		msg += " <" + e.Tag + ">"
	}
	if e.ParentPath != "" {
		msg += " under " + e.ParentPath
	}
	if e.Container != "" {
		msg += " while merging " + e.Container
	}
	if e.SourceFile != "" {
		msg += " from " + e.SourceFile
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MissingContainerError has no underlying cause.
func (e *MissingContainerError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MissingContainerError) Is(target error) bool {
	return target == ErrMissingContainer
}

// PrefixNotFoundError reports that a prefix substitution was requested for a
// reference whose text does not contain the expected prefix. This is
// intentionally fatal: silently skipping the reference previously left
// dangling paths in merged documents.
type PrefixNotFoundError struct {
	// Ref is the reference text that was inspected
	Ref string
	// Prefix is the prefix that was expected
	Prefix string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *PrefixNotFoundError) Error() string {
	msg := "prefix not found"
	if e.Prefix != "" {
		msg += ": " + e.Prefix
	}
	if e.Ref != "" {
		msg += " absent from reference " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as PrefixNotFoundError has no underlying cause.
func (e *PrefixNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PrefixNotFoundError) Is(target error) bool {
	return target == ErrPrefixNotFound
}

// RelocationError reports that a strict relocation encountered a reference
// whose text has no entry in the path map. Callers choose this behavior when
// an unmatched reference must be treated as a consistency error rather than
// left untouched.
type RelocationError struct {
	// Ref is the reference text with no path-map entry
	Ref string
	// Tag is the tag of the reference field
	Tag string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *RelocationError) Error() string {
	msg := "relocation error"
	if e.Tag != "" {
		msg += " at <" + e.Tag + ">"
	}
	if e.Ref != "" {
		msg += ": no mapping for " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as RelocationError has no underlying cause.
func (e *RelocationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *RelocationError) Is(target error) bool {
	return target == ErrRelocation
}

// ParseError represents a failure to read the external tree format.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
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

// PlanError represents an invalid merge plan, configuration, or input.
// This includes invalid modes, duplicate package names, and malformed
// source-node lists (such as two source nodes sharing a key).
type PlanError struct {
	// Option is the name of the problematic plan field or option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PlanError) Error() string {
	msg := "plan error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
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
func (e *PlanError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PlanError) Is(target error) bool {
	return target == ErrPlan
}
