package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints what the stored token says about the session.
// Display only; the token is not validated against the backend.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the current session" }
func (c *WhoamiCmd) Usage() string     { return "taskdeck whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	claims, err := sess.Claims()
	if err == session.ErrNoSession {
		fmt.Fprintln(errOut, "error: not logged in (run: taskdeck login)")
		return exitcode.AuthError
	}
	if err != nil {
		// Opaque (non-JWT) tokens are valid sessions with nothing to show.
		fmt.Fprintln(out, "logged in")
		return exitcode.Success
	}

	switch {
	case claims.Email != "":
		fmt.Fprintf(out, "logged in as %s\n", claims.Email)
	case claims.Name != "":
		fmt.Fprintf(out, "logged in as %s\n", claims.Name)
	case claims.Subject != "":
		fmt.Fprintf(out, "logged in as %s\n", claims.Subject)
	default:
		fmt.Fprintln(out, "logged in")
	}

	if claims.ExpiresAt != nil {
		if claims.ExpiresAt.Before(time.Now()) {
			fmt.Fprintf(out, "token expired %s\n", claims.ExpiresAt.Format(time.RFC3339))
		} else {
			fmt.Fprintf(out, "token expires %s\n", claims.ExpiresAt.Format(time.RFC3339))
		}
	}
	return exitcode.Success
}
