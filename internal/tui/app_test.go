package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/testutil"
)

func newTestModel(t *testing.T, svc *testutil.FakeService, loggedIn bool) (Model, *session.Store) {
	t.Helper()
	cfg := &config.Config{
		Dir:     t.TempDir(),
		BaseURL: "http://backend.test/api",
	}
	sess := session.NewStore(cfg.TokenPath())
	if loggedIn {
		if err := sess.Login("tok"); err != nil {
			t.Fatal(err)
		}
	}
	factory := func(ctx context.Context, cfg *config.Config, token string) (service.Service, error) {
		return svc, nil
	}
	return New(cfg, sess, factory), sess
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewWithoutTokenShowsLogin(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewFakeService(), false)
	if m.view != viewLogin {
		t.Errorf("expected login view, got %v", m.view)
	}
}

func TestNewWithTokenLoadsDashboard(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("t1", "Buy milk")
	svc.AddTask("t2", "Buy eggs")

	m, _ := newTestModel(t, svc, true)
	if m.view != viewDashboard {
		t.Fatalf("expected dashboard view, got %v", m.view)
	}
	if m.state != stateLoading {
		t.Fatalf("expected loading state, got %v", m.state)
	}

	// Run the fetch command the program would run and deliver its message.
	m, _ = update(t, m, m.fetchTasks()())

	if m.state != stateReady {
		t.Errorf("expected ready state, got %v", m.state)
	}
	if len(m.tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(m.tasks))
	}
}

func TestUnauthorizedLoadForcesLogout(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Unauthorized = true

	m, sess := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	if m.view != viewLogin {
		t.Errorf("expected login view after 401, got %v", m.view)
	}
	if m.notice != "session expired, log in again" {
		t.Errorf("unexpected notice %q", m.notice)
	}
	if _, ok := sess.Current(); ok {
		t.Error("expected session to be cleared after 401")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("t1", "old session task")

	m, _ := newTestModel(t, svc, true)

	// Capture a fetch issued before logout, then log out.
	stale := m.fetchTasks()
	m, _ = update(t, m, key('L'))
	if m.view != viewLogin {
		t.Fatalf("expected login view after logout, got %v", m.view)
	}

	// The stale response arrives after the logout. It must not resurrect
	// the dashboard or leak tasks into the new generation.
	m, _ = update(t, m, stale())
	if m.view != viewLogin {
		t.Errorf("stale response changed the view to %v", m.view)
	}
	if len(m.tasks) != 0 {
		t.Errorf("stale response leaked %d tasks", len(m.tasks))
	}
}

func TestFilterKeyCycles(t *testing.T) {
	svc := testutil.NewFakeService()
	m, _ := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	seen := []string{string(m.filter)}
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, key('f'))
		seen = append(seen, string(m.filter))
	}
	want := "all overdue upcoming all"
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("filter cycle %q, want %q", got, want)
	}
}

func TestLoginSubmitEntersDashboard(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Token = "issued"

	m, sess := newTestModel(t, svc, false)
	m.loginForm.inputs[0].SetValue("ada@example.com")
	m.loginForm.inputs[1].SetValue("pw")
	m.loginForm.focus = 1

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	m, _ = update(t, m, cmd())

	if m.view != viewDashboard {
		t.Fatalf("expected dashboard view, got %v (err %q)", m.view, m.errLine)
	}
	if m.state != stateLoading {
		t.Errorf("expected loading state, got %v", m.state)
	}
	if token, ok := sess.Current(); !ok || token != "issued" {
		t.Errorf("expected stored token issued, got %q (ok=%v)", token, ok)
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.LoginErr = &api.StatusError{Code: 400, Message: "invalid credentials"}

	m, sess := newTestModel(t, svc, false)
	m.loginForm.inputs[0].SetValue("ada@example.com")
	m.loginForm.inputs[1].SetValue("wrong")
	m.loginForm.focus = 1

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = nm.(Model)
	m, _ = update(t, m, cmd())

	if m.view != viewLogin {
		t.Errorf("expected to stay on login view, got %v", m.view)
	}
	if m.errLine != "invalid credentials" {
		t.Errorf("expected verbatim server message, got %q", m.errLine)
	}
	if _, ok := sess.Current(); ok {
		t.Error("failed login must not create a session")
	}
}

func TestLoginValidatesEmptyFields(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewFakeService(), false)
	m.loginForm.focus = 1

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = nm.(Model)

	if cmd != nil {
		t.Error("empty submit must not issue a request")
	}
	if m.errLine != "email and password required" {
		t.Errorf("unexpected error line %q", m.errLine)
	}
}

func TestSwitchToRegisterView(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewFakeService(), false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.view != viewRegister {
		t.Fatalf("expected register view, got %v", m.view)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.view != viewLogin {
		t.Errorf("expected login view, got %v", m.view)
	}
}

func TestToggleReflectsServerRecord(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("t1", "Buy milk")

	m, _ := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a toggle command")
	}
	m, _ = update(t, m, cmd())

	if !m.tasks[0].Completed {
		t.Error("expected the task to be completed after toggle")
	}
}

func TestDeleteRemovesSelected(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("t1", "a")
	svc.AddTask("t2", "b")

	m, _ := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	nm, cmd := m.Update(key('d'))
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	m, _ = update(t, m, cmd())

	if len(m.tasks) != 1 || m.tasks[0].ID != "t2" {
		t.Errorf("expected only t2 to remain, got %+v", m.tasks)
	}
}

func TestCreateFormValidation(t *testing.T) {
	svc := testutil.NewFakeService()
	m, _ := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	m, _ = update(t, m, key('n'))
	if !m.creating {
		t.Fatal("expected create form to open")
	}

	// Submit from the due field with an empty title.
	m.createForm.focus = 2
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.errLine != "title required" {
		t.Errorf("unexpected error line %q", m.errLine)
	}

	// Bad due date is rejected before any request.
	m.createForm.title.SetValue("groceries")
	m.createForm.due.SetValue("tomorrow")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.errLine != "invalid due date (expected YYYY-MM-DD)" {
		t.Errorf("unexpected error line %q", m.errLine)
	}
	if svc.TaskCount() != 0 {
		t.Errorf("invalid form reached the backend, %d tasks", svc.TaskCount())
	}
}

func TestCreateAppendsServerRecord(t *testing.T) {
	svc := testutil.NewFakeService()
	m, _ := newTestModel(t, svc, true)
	m, _ = update(t, m, m.fetchTasks()())

	m, _ = update(t, m, key('n'))
	m.createForm.title.SetValue("groceries")
	m.createForm.focus = 2

	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("expected a create command")
	}
	m, _ = update(t, m, cmd())

	if m.creating {
		t.Error("expected create form to close on success")
	}
	if len(m.tasks) != 1 || m.tasks[0].ID != "t1" {
		t.Errorf("expected the server record in the list, got %+v", m.tasks)
	}
}
