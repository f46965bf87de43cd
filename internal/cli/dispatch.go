// Package cli parses the command line, builds the collaborators a command
// needs and runs it.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/remote"
	"tasklist/internal/storage"
	"tasklist/internal/store"
)

// SlotFactory opens the storage slot for cfg.
type SlotFactory func(ctx context.Context, cfg *config.Config) (storage.Slot, error)

// SourceFactory creates the import source from config.
type SourceFactory func(ctx context.Context, cfg *config.Config) (remote.Source, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	slots    SlotFactory
	sources  SourceFactory
}

// NewDispatcher creates a dispatcher over registry.
// A nil sources factory makes remote commands fail their credential pre-flight checks.
func NewDispatcher(registry *commands.Registry, slots SlotFactory, sources SourceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		slots:    slots,
		sources:  sources,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir, backend string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&backend, "backend", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg := &config.Config{}
	if cmd.NeedsConfig() || cmd.NeedsStore() || cmd.NeedsRemote() {
		var err error
		if cfg, err = config.New(configDir); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		if backend != "" {
			if err := cfg.SetBackend(backend); err != nil {
				fmt.Fprintf(errOut, "error: %s\n", err)
				return exitcode.UserError
			}
		}
	}
	cfg.Quiet = quiet
	cfg.Debug = cfg.Debug || debug

	logger := NewLogger(errOut, cfg.Debug)
	var deps commands.Deps

	if cmd.NeedsRemote() {
		source, code := d.openSource(ctx, cfg, errOut)
		if code != exitcode.Success {
			return code
		}
		deps.Remote = source
	}

	storageFailed := false
	if cmd.NeedsStore() {
		slot, err := d.slots(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %v\n", err)
			return exitcode.StorageError
		}
		defer func() {
			if err := slot.Close(); err != nil {
				logger.Warn("close storage", "error", err)
			}
		}()

		st := store.New(slot,
			store.WithLogger(logger),
			store.WithErrorHandler(func(err error) {
				storageFailed = true
				fmt.Fprintf(errOut, "warning: %v\n", err)
			}),
		)
		st.Subscribe(func(snap store.Snapshot) {
			logger.Debug("task list changed", "count", len(snap))
		})
		st.Load(ctx)
		deps.Store = st
	}

	code := cmd.Run(ctx, cfg, deps, positionalArgs, out, errOut)
	if storageFailed && code == exitcode.Success {
		return exitcode.StorageError
	}
	return code
}

// openSource builds the import source or reports why it cannot.
func (d *Dispatcher) openSource(ctx context.Context, cfg *config.Config, errOut io.Writer) (remote.Source, int) {
	if d.sources == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
			return nil, exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: tasklist login)")
			return nil, exitcode.AuthError
		}
		fmt.Fprintln(errOut, "error: import backend is not configured")
		return nil, exitcode.BackendError
	}

	source, err := d.sources(ctx, cfg)
	if err != nil {
		if errors.Is(err, remote.ErrAuth) {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return nil, exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return nil, exitcode.BackendError
	}
	return source, exitcode.Success
}

// flagErrorMessage rewrites flag package errors into the CLI's wording.
func flagErrorMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument: "):
		return msg
	case strings.HasPrefix(msg, "flag provided but not defined: "):
		return "unknown flag: " + strings.TrimPrefix(msg, "flag provided but not defined: ")
	default:
		return msg
	}
}

// NewLogger returns a text logger on w at WARN, or DEBUG when debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
