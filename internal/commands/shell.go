package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/store"
)

// Prompt is printed before each shell input line.
const Prompt = "> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements an interactive session over one loaded store.
// Each input line runs a registered command; the list is re-rendered from
// the store's change notifications after every change.
type ShellCmd struct {
	in       io.Reader
	registry *Registry
}

// SetInput sets the input stream (for testing).
func (c *ShellCmd) SetInput(r io.Reader) {
	c.in = r
}

// SetRegistry sets the registry used to look up commands (for testing).
func (c *ShellCmd) SetRegistry(r *Registry) {
	c.registry = r
}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return nil }
func (c *ShellCmd) Synopsis() string  { return "Start an interactive session" }
func (c *ShellCmd) Usage() string     { return "tasklist shell" }
func (c *ShellCmd) NeedsStore() bool  { return true }
func (c *ShellCmd) NeedsRemote() bool { return false }
func (c *ShellCmd) NeedsConfig() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}

	// Commands stay silent inside the shell; the renderer shows the result.
	sessionCfg := *cfg
	sessionCfg.Quiet = true

	render := func(snap store.Snapshot) {
		if len(snap) == 0 {
			fmt.Fprintln(out, output.EmptyMessage)
			return
		}
		output.FormatList(out, snap)
	}
	unsubscribe := deps.Store.Subscribe(render)
	defer unsubscribe()

	render(deps.Store.Tasks())

	lines, readErr := readLines(ctx, in)
	for {
		fmt.Fprint(out, Prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return exitcode.Success
		case l, more := <-lines:
			if !more {
				fmt.Fprintln(out)
				if err := <-readErr; err != nil {
					fmt.Fprintf(errOut, "error: read input: %v\n", err)
					return exitcode.UserError
				}
				return exitcode.Success
			}
			line = l
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return exitcode.Success
		}
		c.runLine(ctx, registry, &sessionCfg, deps, fields, out, errOut)
	}
}

// readLines scans in on its own goroutine. lines is closed at end of input,
// after the scan error (or nil) has been sent on the error channel.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// runLine dispatches one shell line. Errors are printed and the session continues.
func (c *ShellCmd) runLine(ctx context.Context, registry *Registry, cfg *config.Config, deps Deps, fields []string, out, errOut io.Writer) {
	cmd, found := registry.Find(fields[0])
	if !found {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
		return
	}
	if !cmd.NeedsStore() || cmd.NeedsRemote() || cmd.Name() == c.Name() {
		fmt.Fprintf(errOut, "error: not available in the shell: %s\n", cmd.Name())
		return
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(fields[1:]); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return
	}

	// list and search print even when quiet; everything else renders via the subscription.
	cmd.Run(ctx, cfg, deps, fs.Args(), out, errOut)
}
