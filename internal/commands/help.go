package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskdeck help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskdeck                                           List all tasks
  taskdeck list [common flags] [--filter all|overdue|upcoming] [--detail]
  taskdeck add [common flags] [--desc <text>] [--due YYYY-MM-DD] <title...>
  taskdeck done [common flags] <n>                   Toggle completion of task n
  taskdeck rm [common flags] <n>                     Delete task n
  taskdeck dashboard [common flags]                  Interactive dashboard
  taskdeck register [common flags] --name <name> --email <email> --password <password>
  taskdeck login [common flags] --email <email> --password <password>
  taskdeck logout [common flags]
  taskdeck whoami [common flags]
  taskdeck help
  taskdeck version

Task numbers refer to positions in 'taskdeck list' output.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override backend address (also TASKDECK_API)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
