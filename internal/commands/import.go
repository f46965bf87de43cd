package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/remote"
	"tasklist/internal/task"
)

func init() {
	Register(&ImportCmd{})
}

// ImportCmd copies the tasks of one Google Tasks list into the local list.
// It is a one-shot copy: nothing is written back and nothing is reconciled.
type ImportCmd struct {
	listName string
	all      bool
}

// SetListName sets the list name (for testing).
func (c *ImportCmd) SetListName(name string) {
	c.listName = name
}

// SetAll sets whether completed tasks are imported too (for testing).
func (c *ImportCmd) SetAll(all bool) {
	c.all = all
}

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return nil }
func (c *ImportCmd) Synopsis() string  { return "Copy tasks from a Google Tasks list" }
func (c *ImportCmd) Usage() string     { return "tasklist import [--list <list-name>] [--all]" }
func (c *ImportCmd) NeedsStore() bool  { return true }
func (c *ImportCmd) NeedsRemote() bool { return true }
func (c *ImportCmd) NeedsConfig() bool { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *ImportCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	var list remote.TaskList
	var err error
	if strings.TrimSpace(c.listName) != "" {
		list, err = deps.Remote.ResolveList(ctx, c.listName)
	} else {
		list, err = deps.Remote.DefaultList(ctx)
	}
	if err != nil {
		return reportRemoteError(errOut, c.listName, err)
	}

	remoteTasks, err := deps.Remote.ListTasks(ctx, list.ID, c.all)
	if err != nil {
		return reportRemoteError(errOut, list.Title, err)
	}

	// Keep the list's own order; ties stay in API order.
	slices.SortStableFunc(remoteTasks, func(a, b remote.Task) int {
		return strings.Compare(a.Position, b.Position)
	})

	batch := make([]task.Task, 0, len(remoteTasks))
	for _, rt := range remoteTasks {
		title := strings.TrimSpace(rt.Title)
		if title == "" {
			continue
		}
		if rt.Completed() && !c.all {
			continue
		}
		batch = append(batch, task.Task{Title: title, IsCompleted: rt.Completed()})
	}

	created := deps.Store.Import(ctx, batch)

	if !cfg.Quiet {
		fmt.Fprintf(out, "imported %d tasks\n", len(created))
	}
	return exitcode.Success
}
