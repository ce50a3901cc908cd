package tui

import (
	"fmt"
	"strings"
	"time"

	"taskdeck/internal/service"
	"taskdeck/internal/tasklist"
)

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("taskdeck · log in"))
	b.WriteString("\n\n")
	for i, in := range m.loginForm.inputs {
		b.WriteString(styleMuted.Render(m.loginForm.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLines())
	b.WriteString(styleHelp.Render("enter: submit • tab: next field • ctrl+r: register • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) registerView() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("taskdeck · register"))
	b.WriteString("\n\n")
	for i, in := range m.registerForm.inputs {
		b.WriteString(styleMuted.Render(m.registerForm.labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusLines())
	b.WriteString(styleHelp.Render("enter: submit • tab: next field • ctrl+r: back to login • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) dashboardView() string {
	var b strings.Builder
	header := fmt.Sprintf("taskdeck · %s", m.filterLabel())
	b.WriteString(styleTitle.Render(header))
	b.WriteString("\n\n")

	if m.state == stateLoading {
		b.WriteString(m.spin.View())
		b.WriteString(" loading tasks…\n")
		b.WriteString(m.statusLines())
		return b.String()
	}

	if m.creating {
		b.WriteString(styleMuted.Render("New task"))
		b.WriteString("\n")
		for _, f := range []string{
			m.createForm.title.View(),
			m.createForm.desc.View(),
			m.createForm.due.View(),
		} {
			b.WriteString(f)
			b.WriteString("\n")
		}
		b.WriteString(m.statusLines())
		b.WriteString(styleHelp.Render("enter: save • tab: next field • esc: cancel"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString(styleMuted.Render("no tasks found"))
		b.WriteString("\n")
	}
	now := time.Now()
	for i, task := range visible {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(m.taskLine(task, now))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLines())
	b.WriteString(styleHelp.Render("space: toggle • n: new • d: delete • f: filter • r: reload • L: logout • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) taskLine(task service.Task, now time.Time) string {
	mark := "[ ]"
	title := task.Title
	if task.Completed {
		mark = "[x]"
		title = styleDone.Render(title)
	}
	line := mark + " " + title
	if task.DueDate != nil {
		due := "due " + task.DueDate.Format("2006-01-02")
		if !task.Completed && task.DueDate.Before(now) {
			line += "  " + styleLate.Render(due+", overdue")
		} else {
			line += "  " + styleDue.Render(due)
		}
	}
	return line
}

func (m Model) filterLabel() string {
	switch m.filter {
	case tasklist.FilterOverdue:
		return "overdue tasks"
	case tasklist.FilterUpcoming:
		return "upcoming tasks"
	default:
		return "all tasks"
	}
}

func (m Model) statusLines() string {
	var b strings.Builder
	if m.errLine != "" {
		b.WriteString(styleError.Render(m.errLine))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(styleMuted.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
