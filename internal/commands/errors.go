package commands

import (
	"errors"
	"fmt"
	"io"

	"tasklist/internal/exitcode"
	"tasklist/internal/remote"
	"tasklist/internal/store"
)

// reportRefError prints a task-reference or store error and returns the exit code.
func reportRefError(errOut io.Writer, ref TaskRef, err error) int {
	switch {
	case errors.Is(err, ErrTaskRefRequired):
		fmt.Fprintln(errOut, "error: task reference required")
	case errors.Is(err, errOutOfRange), errors.Is(err, store.ErrOutOfRange):
		fmt.Fprintf(errOut, "error: task number out of range: %s\n", ref)
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}

// reportRemoteError maps an import backend error to a message and exit code.
func reportRemoteError(errOut io.Writer, listName string, err error) int {
	switch {
	case errors.Is(err, remote.ErrNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", listName)
		return exitcode.UserError
	case errors.Is(err, remote.ErrAmbiguous):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", listName)
		return exitcode.UserError
	case errors.Is(err, remote.ErrAuth):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// ok prints the success acknowledgement unless quiet.
func ok(out io.Writer, quiet bool) int {
	if !quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
