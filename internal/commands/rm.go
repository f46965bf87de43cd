package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
// Several references are resolved against the list as it is before any
// removal and deleted in one batch.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete one or more tasks" }
func (c *RmCmd) Usage() string     { return "tasklist rm <ref...>" }
func (c *RmCmd) NeedsStore() bool  { return true }
func (c *RmCmd) NeedsRemote() bool { return false }
func (c *RmCmd) NeedsConfig() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, deps Deps, args []string, out, errOut io.Writer) int {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		return reportRefError(errOut, TaskRef{}, err)
	}

	if len(refs) == 1 {
		t, _, err := resolveRef(deps.Store, refs[0])
		if err != nil {
			return reportRefError(errOut, refs[0], err)
		}
		if err := deps.Store.Delete(ctx, t.ID); err != nil {
			return reportRefError(errOut, refs[0], err)
		}
		return ok(out, cfg.Quiet)
	}

	offsets := make([]int, 0, len(refs))
	for _, ref := range refs {
		_, pos, err := resolveRef(deps.Store, ref)
		if err != nil {
			return reportRefError(errOut, ref, err)
		}
		offsets = append(offsets, pos)
	}
	if err := deps.Store.DeleteAt(ctx, offsets); err != nil {
		return reportRefError(errOut, TaskRef{}, err)
	}
	return ok(out, cfg.Quiet)
}
