package errors

import "errors"

// Exit codes returned by the sire binary.
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitValidationError    = 2
	ExitPermissionDenied   = 4
	ExitNotFound           = 5
	ExitConfigurationError = 6
	ExitAborted            = 130
)

// exitCodes maps each code to its display name and the sentinels that
// select it. Checked in order.
var exitCodes = []struct {
	code      int
	name      string
	sentinels []error
}{
	{ExitAborted, "Aborted", []error{ErrAborted}},
	{ExitValidationError, "Validation Error", []error{ErrValidation}},
	{ExitPermissionDenied, "Permission Denied", []error{ErrPermission}},
	{ExitConfigurationError, "Configuration Error", []error{ErrTemplatesNotFound}},
	{ExitNotFound, "Not Found", []error{ErrNotFound, ErrTemplateMissing}},
	{ExitGeneralError, "General Error", nil},
	{ExitSuccess, "Success", nil},
}

// ExitError carries the process exit code for err.
type ExitError struct {
	Code int
	Err  error

	// Printed is set once the command layer has reported Err, so main
	// does not print it again.
	Printed bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError for err with the given code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError returns the code carried by an ExitError in err's chain,
// else the code of the first matching sentinel, else ExitGeneralError.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	for _, ec := range exitCodes {
		for _, s := range ec.sentinels {
			if errors.Is(err, s) {
				return ec.code
			}
		}
	}
	return ExitGeneralError
}

// ExitCodeName returns a display name for code.
func ExitCodeName(code int) string {
	for _, ec := range exitCodes {
		if ec.code == code {
			return ec.name
		}
	}
	return "Unknown"
}
