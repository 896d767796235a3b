package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests run without a TTY, so the action executes directly.

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("pip failed")
	err := RunWithSpinner(context.Background(), "Installing", func(context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunWithSpinner(ctx, "Installing", func(ctx context.Context) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}
