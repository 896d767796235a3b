package scaffold

import (
	"fmt"
	"os"
	"regexp"

	"github.com/gosimple/slug"

	oerrors "github.com/opmodel/sire/internal/errors"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateName checks that name can serve as both a directory and a package
// name.
func ValidateName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name is required", "", "name", "")
	}
	if namePattern.MatchString(name) {
		return nil
	}

	hint := "Use letters, digits, '_' or '-', starting with a letter."
	if s := slug.Make(name); s != "" && namePattern.MatchString(s) {
		hint = fmt.Sprintf("%s Try %q.", hint, s)
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid project name %q", name), "", "name", hint)
}

// checkTarget refuses to reuse an existing path.
func checkTarget(root string) error {
	if _, err := os.Stat(root); err == nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory already exists: %s", root),
			Location: root,
			Hint:     "Choose a different project name or remove the existing directory.",
			Cause:    oerrors.ErrValidation,
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", root, err)
	}
	return nil
}
