package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/service"
)

// createForm is the inline new-task form on the dashboard.
type createForm struct {
	title textinput.Model
	desc  textinput.Model
	due   textinput.Model
	focus int
}

func newCreateForm() createForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "description (optional)"

	due := textinput.New()
	due.Placeholder = "due YYYY-MM-DD (optional)"
	due.CharLimit = 10

	return createForm{title: title, desc: desc, due: due}
}

func (f *createForm) fields() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.desc, &f.due}
}

func (f *createForm) focusCmd() tea.Cmd {
	for i, in := range f.fields() {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	return textinput.Blink
}

func (f *createForm) next() tea.Cmd {
	f.focus = (f.focus + 1) % 3
	return f.focusCmd()
}

func (m Model) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.creating {
		return m.updateCreateKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil

	case "f":
		m.filter = m.filter.Next()
		m.clampCursor()
		return m, nil

	case "r":
		m.state = stateLoading
		m.errLine = ""
		return m, tea.Batch(m.spin.Tick, m.fetchTasks())

	case "n", "a":
		m.creating = true
		m.errLine = ""
		m.createForm = newCreateForm()
		return m, m.createForm.focusCmd()

	case " ", "enter":
		if task, ok := m.selectedTask(); ok {
			m.errLine = ""
			return m, m.toggleTask(task)
		}
		return m, nil

	case "d", "x":
		if task, ok := m.selectedTask(); ok {
			m.errLine = ""
			return m, m.deleteTask(task.ID)
		}
		return m, nil

	case "L":
		return m.forceLogout("logged out")
	}

	return m, nil
}

func (m Model) updateCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.creating = false
		m.createForm = newCreateForm()
		return m, nil

	case "tab", "down":
		return m, m.createForm.next()

	case "enter":
		if m.createForm.focus < 2 {
			return m, m.createForm.next()
		}
		return m.submitCreate()
	}

	f := m.createForm.fields()[m.createForm.focus]
	var cmd tea.Cmd
	*f, cmd = f.Update(msg)
	return m, cmd
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.createForm.title.Value())
	if title == "" {
		m.errLine = "title required"
		return m, nil
	}

	draft := service.TaskDraft{
		Title:       title,
		Description: strings.TrimSpace(m.createForm.desc.Value()),
	}
	if due := strings.TrimSpace(m.createForm.due.Value()); due != "" {
		t, err := time.Parse("2006-01-02", due)
		if err != nil {
			m.errLine = "invalid due date (expected YYYY-MM-DD)"
			return m, nil
		}
		draft.DueDate = &t
	}

	m.errLine = ""
	return m, m.createTask(draft)
}

// visibleTasks returns the rendered subset under the current filter.
// The filter never mutates the list; it only narrows what is shown.
func (m Model) visibleTasks() []service.Task {
	return m.filter.Apply(m.tasks, time.Now())
}

func (m Model) selectedTask() (service.Task, bool) {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return service.Task{}, false
	}
	return visible[m.cursor], true
}
