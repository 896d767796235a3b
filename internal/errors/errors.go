// Package errors provides sentinel errors and structured error types for sire.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DetailError is a user-facing error with optional location, field,
// context and hint lines.
type DetailError struct {
	Type     string
	Message  string
	Location string
	Field    string
	Context  map[string]string
	Hint     string
	Cause    error
}

// Error renders the multi-line report:
//
//	Error: <type>
//	  Location: <location>
//	  Field: <field>
//	  <context key>: <value>
//
//	  <message>
//
//	Hint: <hint>
func (e *DetailError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Type)

	labels := [][2]string{{"Location", e.Location}, {"Field", e.Field}}
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		labels = append(labels, [2]string{k, e.Context[k]})
	}
	for _, l := range labels {
		if l[1] != "" {
			fmt.Fprintf(&b, "  %s: %s\n", l[0], l[1])
		}
	}

	fmt.Fprintf(&b, "\n  %s\n", e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}
	return b.String()
}

func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports rejected user input.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{Type: "validation failed", Message: message, Location: location, Field: field, Hint: hint, Cause: ErrValidation}
}

// NewNotFoundError reports a missing file or directory.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{Type: "not found", Message: message, Location: location, Hint: hint, Cause: ErrNotFound}
}

// NewPermissionError reports a write or read the filesystem refused.
func NewPermissionError(message, location, hint string) error {
	return &DetailError{Type: "permission denied", Message: message, Location: location, Hint: hint, Cause: ErrPermission}
}

// NewTemplatesNotFoundError reports that none of the candidate directories
// holds a templates directory. Every probed candidate is listed.
func NewTemplatesNotFoundError(candidates []string) error {
	ctx := make(map[string]string, len(candidates))
	for i, c := range candidates {
		ctx[fmt.Sprintf("Candidate %d", i+1)] = c
	}
	return &DetailError{
		Type:    "configuration error",
		Message: fmt.Sprintf("no templates directory found in %d candidate locations", len(candidates)),
		Context: ctx,
		Hint:    "Pass --templates <dir>, set SIRE_TEMPLATES, or allow the built-in templates.",
		Cause:   ErrTemplatesNotFound,
	}
}

// NewTemplateMissingError reports a resolved output path without a template file.
func NewTemplateMissingError(name, dir string) error {
	return &DetailError{
		Type:     "missing template",
		Message:  fmt.Sprintf("no template named %q", name),
		Location: dir,
		Hint:     "The templates directory is incomplete; reinstall sire or point --templates at a full copy.",
		Cause:    ErrTemplateMissing,
	}
}

// Wrap prefixes sentinel with message, keeping it matchable with errors.Is.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// IsAborted reports whether err represents a user cancellation.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
