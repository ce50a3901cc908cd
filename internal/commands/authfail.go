package commands

import (
	"errors"
	"fmt"
	"io"

	"taskdeck/internal/api"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/session"
)

// forceLogout clears the session after an authentication rejection.
// Every authenticated command routes a 401 through here; the rejection is
// never surfaced as an inline action error.
func forceLogout(sess *session.Store, errOut io.Writer) int {
	_ = sess.Logout()
	fmt.Fprintln(errOut, "error: session expired (run: taskdeck login)")
	return exitcode.AuthError
}

// authFailureCode maps a login/register failure to an exit code. Only a
// 4xx rejection of the submitted credentials is an auth error; network
// failures and 5xx responses are the backend's fault.
func authFailureCode(err error) int {
	var se *api.StatusError
	if errors.As(err, &se) && se.Code >= 400 && se.Code < 500 {
		return exitcode.AuthError
	}
	return exitcode.BackendError
}
