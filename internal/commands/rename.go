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
	Register(&RenameCmd{})
}

// RenameCmd implements the rename command.
type RenameCmd struct{}

func (c *RenameCmd) Name() string      { return "rename" }
func (c *RenameCmd) Aliases() []string { return []string{"edit"} }
func (c *RenameCmd) Synopsis() string  { return "Change a task's title" }
func (c *RenameCmd) Usage() string     { return "tasklist rename <ref> <title...>" }
func (c *RenameCmd) NeedsStore() bool  { return true }
func (c *RenameCmd) NeedsRemote() bool { return false }
func (c *RenameCmd) NeedsConfig() bool { return true }

func (c *RenameCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	ref, err := ParseTaskRef(args[0])
	if err != nil {
		return reportRefError(errOut, ref, err)
	}

	title, valid := joinTitle(args[1:])
	if !valid {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	t, _, err := resolveRef(deps.Store, ref)
	if err != nil {
		return reportRefError(errOut, ref, err)
	}
	if err := deps.Store.Rename(ctx, t.ID, title); err != nil {
		return reportRefError(errOut, ref, err)
	}
	return ok(out, cfg.Quiet)
}
