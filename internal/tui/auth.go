package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/api"
)

// authForm is a vertical stack of labelled text inputs with one focused
// field. Used by both the login and register views.
type authForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newLoginForm() authForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return authForm{
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{email, password},
	}
}

func newRegisterForm() authForm {
	name := textinput.New()
	name.Placeholder = "name"

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return authForm{
		labels: []string{"Name", "Email", "Password"},
		inputs: []textinput.Model{name, email, password},
	}
}

func (f *authForm) focusCmd() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

func (f *authForm) next() tea.Cmd {
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.focusCmd()
}

func (f *authForm) prev() tea.Cmd {
	f.focus = (f.focus + len(f.inputs) - 1) % len(f.inputs)
	return f.focusCmd()
}

func (f *authForm) values() []string {
	vals := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		vals[i] = strings.TrimSpace(in.Value())
	}
	return vals
}

func (f *authForm) onLastField() bool {
	return f.focus == len(f.inputs)-1
}

func (m Model) updateAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.loginForm
	if m.view == viewRegister {
		form = &m.registerForm
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		return m, form.next()

	case "shift+tab", "up":
		return m, form.prev()

	case "ctrl+r":
		// Switch between login and register.
		m.errLine = ""
		if m.view == viewLogin {
			m.view = viewRegister
			return m, m.registerForm.focusCmd()
		}
		m.view = viewLogin
		return m, m.loginForm.focusCmd()

	case "enter":
		if !form.onLastField() {
			return m, form.next()
		}
		if m.view == viewLogin {
			return m.submitLogin()
		}
		return m.submitRegister()
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	vals := m.loginForm.values()
	email, password := vals[0], vals[1]
	if email == "" || password == "" {
		m.errLine = "email and password required"
		return m, nil
	}

	m.errLine = ""
	m.notice = ""
	factory, cfg, seq := m.factory, m.cfg, m.seq
	return m, func() tea.Msg {
		svc, err := factory(context.Background(), cfg, "")
		if err != nil {
			return authDoneMsg{seq: seq, err: err}
		}
		token, err := svc.Login(context.Background(), email, password)
		return authDoneMsg{seq: seq, token: token, err: err}
	}
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	vals := m.registerForm.values()
	name, email, password := vals[0], vals[1], vals[2]
	if name == "" || email == "" || password == "" {
		m.errLine = "name, email and password required"
		return m, nil
	}

	m.errLine = ""
	m.notice = ""
	factory, cfg, seq := m.factory, m.cfg, m.seq
	return m, func() tea.Msg {
		svc, err := factory(context.Background(), cfg, "")
		if err != nil {
			return authDoneMsg{seq: seq, err: err}
		}
		token, err := svc.Register(context.Background(), name, email, password)
		return authDoneMsg{seq: seq, token: token, err: err}
	}
}

func (m Model) updateAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		// Session state is untouched on failure; the server message is
		// shown verbatim when there is one.
		fallback := "login failed"
		if m.view == viewRegister {
			fallback = "registration failed"
		}
		m.errLine = api.ServerMessage(msg.err, fallback)
		return m, nil
	}

	if err := m.cfg.EnsureDir(); err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	if err := m.sess.Login(msg.token); err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	return m.enterDashboard(msg.token)
}
