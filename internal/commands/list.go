package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tasklist"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `taskdeck` (no args) and `taskdeck list [--filter <f>]`.
type ListCmd struct {
	filter string
	detail bool
}

// SetFilter sets the filter name (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskdeck list [--filter all|overdue|upcoming] [--detail]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "all", "")
	fs.StringVar(&c.filter, "f", "all", "")
	fs.BoolVar(&c.detail, "detail", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	filter, err := tasklist.ParseFilter(c.filter)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	repo := tasklist.NewRepository(svc, tasklist.NewStore())
	if err := repo.List(ctx); err != nil {
		if api.IsUnauthorized(err) {
			return forceLogout(sess, errOut)
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	now := time.Now()
	tasks := repo.Store().Tasks()

	if filter != tasklist.FilterAll {
		output.FormatFilterHeader(out, string(filter))
	}

	// Numbers are positions in the full list so that `done <n>` and
	// `rm <n>` mean the same task under any filter.
	shown := 0
	for i, task := range tasks {
		if !filter.Matches(task, now) {
			continue
		}
		if c.detail {
			output.FormatTaskDetail(out, i+1, task, now)
		} else {
			output.FormatTask(out, i+1, task, now)
		}
		shown++
	}

	if shown == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
