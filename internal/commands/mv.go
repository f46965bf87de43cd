package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

func init() {
	Register(&MvCmd{})
}

// MvCmd implements the mv command.
type MvCmd struct{}

func (c *MvCmd) Name() string      { return "mv" }
func (c *MvCmd) Aliases() []string { return []string{"move"} }
func (c *MvCmd) Synopsis() string  { return "Move a task to another position" }
func (c *MvCmd) Usage() string     { return "tasklist mv <ref> <position>" }
func (c *MvCmd) NeedsStore() bool  { return true }
func (c *MvCmd) NeedsRemote() bool { return false }
func (c *MvCmd) NeedsConfig() bool { return true }

func (c *MvCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MvCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task reference and target position required")
		return exitcode.UserError
	}

	ref, err := ParseTaskRef(args[0])
	if err != nil {
		return reportRefError(errOut, ref, err)
	}
	_, from, err := resolveRef(deps.Store, ref)
	if err != nil {
		return reportRefError(errOut, ref, err)
	}

	if !isAllDigits(args[1]) {
		fmt.Fprintf(errOut, "error: invalid position: %s\n", args[1])
		return exitcode.UserError
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid position: %s\n", args[1])
		return exitcode.UserError
	}

	if err := deps.Store.Move(ctx, from, to-1); err != nil {
		return reportRefError(errOut, TaskRef{Num: to}, err)
	}
	return ok(out, cfg.Quiet)
}
