package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (project name, flags, answers).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrTemplatesNotFound indicates no templates directory exists on the probe path.
	ErrTemplatesNotFound = errors.New("templates not found")

	// ErrTemplateMissing indicates a resolved output path has no backing template.
	ErrTemplateMissing = errors.New("template missing")

	// ErrAborted indicates the user cancelled the run.
	ErrAborted = errors.New("aborted by user")
)
