package tui

// Views and messages of the dashboard program.
//
// Every message produced by a backend call carries the seq of the repo
// generation that issued it. Logging out or in starts a new generation;
// messages from an older one are stale responses that arrived after
// navigation and are discarded on receipt.

type view int

const (
	viewLogin view = iota
	viewRegister
	viewDashboard
)

// dashState is the dashboard lifecycle: loading while the initial fetch is
// in flight, ready once the list is populated. The unauthenticated state is
// represented by view != viewDashboard.
type dashState int

const (
	stateLoading dashState = iota
	stateReady
)

type authDoneMsg struct {
	seq   int
	token string
	err   error
}

type tasksLoadedMsg struct {
	seq int
	err error
}

type taskCreatedMsg struct {
	seq int
	err error
}

type taskToggledMsg struct {
	seq int
	err error
}

type taskDeletedMsg struct {
	seq int
	err error
}
