package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task at the top of the list" }
func (c *AddCmd) Usage() string     { return "tasklist add <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) NeedsRemote() bool { return false }
func (c *AddCmd) NeedsConfig() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	title, valid := joinTitle(args)
	if !valid {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	deps.Store.Add(ctx, title)
	return ok(out, cfg.Quiet)
}

// joinTitle joins args into a title. Blank titles are rejected here; the
// store accepts any title it is given.
func joinTitle(args []string) (string, bool) {
	title := strings.TrimSpace(strings.Join(args, " "))
	return title, title != ""
}
