package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tasklist"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	desc string
	due  string
}

// SetDetails sets the optional fields (for testing).
func (c *AddCmd) SetDetails(desc, due string) {
	c.desc = desc
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskdeck add [--desc <text>] [--due YYYY-MM-DD] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.desc, "desc", "", "")
	fs.StringVar(&c.desc, "d", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	draft := service.TaskDraft{Title: title, Description: c.desc}
	if c.due != "" {
		due, err := time.Parse("2006-01-02", c.due)
		if err != nil {
			fmt.Fprintf(errOut, "error: invalid due date: %s (expected YYYY-MM-DD)\n", c.due)
			return exitcode.UserError
		}
		draft.DueDate = &due
	}

	repo := tasklist.NewRepository(svc, tasklist.NewStore())
	if _, err := repo.Create(ctx, draft); err != nil {
		if api.IsUnauthorized(err) {
			return forceLogout(sess, errOut)
		}
		fmt.Fprintf(errOut, "error: failed to create task: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
