// Package tui is the interactive dashboard: a single long-lived program
// that moves between the auth views and the task dashboard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/backend/taskapi"
	"taskdeck/internal/config"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/tasklist"
)

// ServiceFactory creates a Service from config and a token. token is empty
// for the auth endpoints.
type ServiceFactory func(ctx context.Context, cfg *config.Config, token string) (service.Service, error)

// Model is the dashboard program. It owns the session transitions; the
// task list itself lives in the tasklist.Store of the current repo.
type Model struct {
	cfg     *config.Config
	sess    *session.Store
	factory ServiceFactory

	// seq is the repo generation. Bumped on every login/logout so that
	// responses issued against an abandoned session are discarded.
	seq  int
	svc  service.Service
	repo *tasklist.Repository

	view  view
	state dashState

	filter  tasklist.Filter
	tasks   []service.Task
	cursor  int
	errLine string
	notice  string

	loginForm    authForm
	registerForm authForm
	createForm   createForm
	creating     bool

	spin   spinner.Model
	width  int
	height int
}

// New creates the program model. factory may be nil, in which case the
// REST backend from the config is used. The initial view is determined by
// token presence: a stored token goes straight to the loading dashboard.
func New(cfg *config.Config, sess *session.Store, factory ServiceFactory) Model {
	if factory == nil {
		factory = func(ctx context.Context, cfg *config.Config, token string) (service.Service, error) {
			return taskapi.New(ctx, cfg, token)
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		cfg:          cfg,
		sess:         sess,
		factory:      factory,
		filter:       tasklist.FilterAll,
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		createForm:   newCreateForm(),
		spin:         sp,
		view:         viewLogin,
		state:        stateLoading,
	}

	if token, ok := sess.Current(); ok {
		if svc, err := factory(context.Background(), cfg, token); err == nil {
			m.svc = svc
			m.repo = tasklist.NewRepository(svc, tasklist.NewStore())
			m.view = viewDashboard
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == viewDashboard {
		return tea.Batch(m.spin.Tick, m.fetchTasks())
	}
	return m.loginForm.focusCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.view == viewDashboard && m.state == stateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case authDoneMsg:
		return m.updateAuthDone(msg)

	case tasksLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err, "failed to load tasks")
		}
		m.tasks = m.repo.Store().Tasks()
		m.state = stateReady
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err, "failed to create task")
		}
		m.tasks = m.repo.Store().Tasks()
		m.creating = false
		m.createForm = newCreateForm()
		m.clampCursor()
		return m, nil

	case taskToggledMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err, "update failed")
		}
		m.tasks = m.repo.Store().Tasks()
		return m, nil

	case taskDeletedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err, "failed to delete task")
		}
		m.tasks = m.repo.Store().Tasks()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewLogin, viewRegister:
			return m.updateAuthKey(msg)
		default:
			return m.updateDashboardKey(msg)
		}
	}

	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case viewLogin:
		return m.loginView()
	case viewRegister:
		return m.registerView()
	default:
		return m.dashboardView()
	}
}

// fail converts a request failure into UI state. An authentication
// rejection forces a logout and returns to the login view; anything else
// becomes an inline error with the task list left unchanged.
func (m Model) fail(err error, generic string) (tea.Model, tea.Cmd) {
	if api.IsUnauthorized(err) {
		return m.forceLogout("session expired, log in again")
	}
	m.errLine = api.ServerMessage(err, generic)
	if m.state == stateLoading {
		m.state = stateReady
	}
	return m, nil
}

// forceLogout clears the session and transitions to the login view.
// The seq bump makes any in-flight response stale.
func (m Model) forceLogout(notice string) (tea.Model, tea.Cmd) {
	_ = m.sess.Logout()
	m.seq++
	m.svc = nil
	m.repo = nil
	m.tasks = nil
	m.cursor = 0
	m.creating = false
	m.errLine = ""
	m.notice = notice
	m.view = viewLogin
	m.loginForm = newLoginForm()
	return m, m.loginForm.focusCmd()
}

// enterDashboard builds the authenticated repo for a fresh token and
// starts the initial fetch.
func (m Model) enterDashboard(token string) (tea.Model, tea.Cmd) {
	svc, err := m.factory(context.Background(), m.cfg, token)
	if err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	m.seq++
	m.svc = svc
	m.repo = tasklist.NewRepository(svc, tasklist.NewStore())
	m.view = viewDashboard
	m.state = stateLoading
	m.errLine = ""
	m.notice = ""
	m.filter = tasklist.FilterAll
	m.cursor = 0
	return m, tea.Batch(m.spin.Tick, m.fetchTasks())
}

func (m *Model) clampCursor() {
	visible := len(m.visibleTasks())
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Backend commands. Each closes over the repo of the current generation;
// the seq lets Update drop results that outlive it.

func (m Model) fetchTasks() tea.Cmd {
	repo, seq := m.repo, m.seq
	return func() tea.Msg {
		err := repo.List(context.Background())
		return tasksLoadedMsg{seq: seq, err: err}
	}
}

func (m Model) createTask(draft service.TaskDraft) tea.Cmd {
	repo, seq := m.repo, m.seq
	return func() tea.Msg {
		_, err := repo.Create(context.Background(), draft)
		return taskCreatedMsg{seq: seq, err: err}
	}
}

func (m Model) toggleTask(task service.Task) tea.Cmd {
	repo, seq := m.repo, m.seq
	return func() tea.Msg {
		_, err := repo.ToggleComplete(context.Background(), task)
		return taskToggledMsg{seq: seq, err: err}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	repo, seq := m.repo, m.seq
	return func() tea.Msg {
		err := repo.Delete(context.Background(), id)
		return taskDeletedMsg{seq: seq, err: err}
	}
}
