package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	oerrors "github.com/opmodel/sire/internal/errors"
	"github.com/opmodel/sire/internal/output"
)

// stderr is where detailed errors are printed.
var stderr io.Writer = os.Stderr

// Fail prints err once and returns an ExitError carrying the mapped exit
// code. Structured errors print in full; others go through the logger.
func Fail(msg string, err error) error {
	code := oerrors.ExitCodeFromError(err)
	if oerrors.IsAborted(err) {
		output.Warn("aborted")
		return &oerrors.ExitError{Code: code, Err: err, Printed: true}
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		fmt.Fprint(stderr, detail.Error())
	} else {
		output.Error(msg, "error", err)
	}
	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}
