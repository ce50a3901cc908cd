// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskdeck/internal/service"
)

// DueDateFormat is the display form of due dates.
const DueDateFormat = "2006-01-02"

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [{x| }] {TITLE}  (due {DATE}[, overdue])\n"
func FormatTask(w io.Writer, num int, task service.Task, now time.Time) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("%4d  [%s] %s", num, mark, normalizeTitle(task.Title))
	if task.DueDate != nil {
		due := task.DueDate.Format(DueDateFormat)
		if !task.Completed && task.DueDate.Before(now) {
			line += fmt.Sprintf("  (due %s, overdue)", due)
		} else {
			line += fmt.Sprintf("  (due %s)", due)
		}
	}
	fmt.Fprintln(w, line)
}

// FormatTaskDetail prints a task with its description indented underneath.
func FormatTaskDetail(w io.Writer, num int, task service.Task, now time.Time) {
	FormatTask(w, num, task, now)
	if strings.TrimSpace(task.Description) != "" {
		fmt.Fprintf(w, "      %s\n", normalizeTitle(task.Description))
	}
}

// FormatFilterHeader prints a section header for a non-default filter.
func FormatFilterHeader(w io.Writer, name string) {
	fmt.Fprintf(w, "%s tasks:\n", name)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
