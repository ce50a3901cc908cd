package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tui"
)

func init() {
	Register(&DashboardCmd{})
}

// DashboardCmd runs the interactive dashboard.
type DashboardCmd struct {
	// Factory overrides backend construction (for testing).
	Factory tui.ServiceFactory
}

func (c *DashboardCmd) Name() string      { return "dashboard" }
func (c *DashboardCmd) Aliases() []string { return []string{"ui"} }
func (c *DashboardCmd) Synopsis() string  { return "Open the interactive dashboard" }
func (c *DashboardCmd) Usage() string     { return "taskdeck dashboard [common flags]" }

// NeedsAuth is false: the dashboard shows its own login view when no
// session is stored.
func (c *DashboardCmd) NeedsAuth() bool { return false }

func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	app := tui.New(cfg, sess, c.Factory)
	p := tea.NewProgram(app, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
