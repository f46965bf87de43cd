// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/remote"
	"tasklist/internal/store"
)

// Deps carries the collaborators a command asked for.
type Deps struct {
	// Store is the loaded task store. Nil unless NeedsStore returns true.
	Store *store.Store

	// Remote is the import source. Nil unless NeedsRemote returns true.
	Remote remote.Source
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or changes the task list.
	NeedsStore() bool

	// NeedsRemote returns true if the command talks to the import backend.
	NeedsRemote() bool

	// NeedsConfig returns true if the command reads the environment, the
	// config directory or the backend selection. Commands that do not are
	// given a zero Config with only Quiet set.
	NeedsConfig() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int
}
