// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, out of range).
	UserError = 1

	// AuthError indicates an auth/config error for the import backend.
	AuthError = 2

	// BackendError indicates a remote API or network error during import.
	BackendError = 3

	// StorageError indicates the task list could not be saved or loaded.
	// The command's in-memory effect still happened.
	StorageError = 4
)
