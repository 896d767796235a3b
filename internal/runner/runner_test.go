package runner

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExec_Success(t *testing.T) {
	requireSh(t)
	dir := t.TempDir()

	res, err := Exec{}.Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "pwd; echo oops >&2"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Contains(t, res.Stdout, dir)
	assert.Equal(t, "oops\n", res.Stderr)
}

func TestExec_NonZeroExit(t *testing.T) {
	requireSh(t)

	res, err := Exec{}.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.OK())
}

func TestExec_MissingBinary(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), Command{Name: "sire-no-such-binary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sire-no-such-binary")
}

func TestExec_Cancelled(t *testing.T) {
	requireSh(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Exec{}.Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	var got Command
	r := Func(func(_ context.Context, cmd Command) (Result, error) {
		got = cmd
		return Result{ExitCode: 1}, nil
	})

	res, err := r.Run(context.Background(), Command{Name: "git", Args: []string{"init"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "git init", got.String())
}
