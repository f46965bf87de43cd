package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task between open and completed" }
func (c *DoneCmd) Usage() string     { return "tasklist done <ref>" }
func (c *DoneCmd) NeedsStore() bool  { return true }
func (c *DoneCmd) NeedsRemote() bool { return false }
func (c *DoneCmd) NeedsConfig() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	ref, err := ParseTaskRef(args[0])
	if err != nil {
		return reportRefError(errOut, ref, err)
	}
	t, _, err := resolveRef(deps.Store, ref)
	if err != nil {
		return reportRefError(errOut, ref, err)
	}
	if err := deps.Store.Toggle(ctx, t.ID); err != nil {
		return reportRefError(errOut, ref, err)
	}
	return ok(out, cfg.Quiet)
}
