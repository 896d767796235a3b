package output

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner shows title. Without a TTY the
// action runs directly. The action's error is returned; cancelling ctx stops
// the spinner.
func RunWithSpinner(ctx context.Context, title string, action func(ctx context.Context) error) error {
	if !IsTTY() {
		return action(ctx)
	}

	return spinner.New().
		Type(spinner.Dots).
		Title(" " + title).
		Context(ctx).
		ActionWithErr(action).
		Run()
}
