// Command sire scaffolds new Python projects.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/opmodel/sire/internal/cmd"
	oerrors "github.com/opmodel/sire/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.NewRootCmd().ExecuteContext(ctx)
	stop()

	os.Exit(report(os.Stderr, err))
}

// report prints err unless the command layer already did and returns the
// exit code for it.
func report(w io.Writer, err error) int {
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(w, err)
	}
	return oerrors.ExitCodeFromError(err)
}
