package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/store"
	"tasklist/internal/task"
)

func init() {
	Register(&ListCmd{})
	Register(&SearchCmd{})
}

// ListCmd implements the list command.
// Handles both `tasklist` (no args) and `tasklist list --search <q>`.
type ListCmd struct {
	search string
}

// SetSearch sets the search query (for testing).
func (c *ListCmd) SetSearch(q string) {
	c.search = q
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tasklist list [--search <query>]" }
func (c *ListCmd) NeedsStore() bool  { return true }
func (c *ListCmd) NeedsRemote() bool { return false }
func (c *ListCmd) NeedsConfig() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	return printMatches(cfg, deps.Store, c.search, out)
}

// SearchCmd implements the search command.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return []string{"find"} }
func (c *SearchCmd) Synopsis() string  { return "List tasks whose title contains a text" }
func (c *SearchCmd) Usage() string     { return "tasklist search <query...>" }
func (c *SearchCmd) NeedsStore() bool  { return true }
func (c *SearchCmd) NeedsRemote() bool { return false }
func (c *SearchCmd) NeedsConfig() bool { return true }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(errOut, "error: search query required")
		return exitcode.UserError
	}
	return printMatches(cfg, deps.Store, query, out)
}

// printMatches prints the tasks matching query. Lines carry each task's
// position in the full list so they can be used as references.
func printMatches(cfg *config.Config, st *store.Store, query string, out io.Writer) int {
	matches := st.Search(query)
	if len(matches) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.EmptyMessage)
		}
		return exitcode.Success
	}

	positions := positionsByID(st.Tasks())
	for _, t := range matches {
		output.FormatTask(out, positions[t.ID], t)
	}
	return exitcode.Success
}

// positionsByID maps task ids to 1-based positions.
func positionsByID(tasks []task.Task) map[string]int {
	m := make(map[string]int, len(tasks))
	for i, t := range tasks {
		m[t.ID] = i + 1
	}
	return m
}
