package taskapi

import (
	"fmt"
	"time"

	"taskdeck/internal/service"
)

// dueDateFormat is the date-only form sent to the backend. The backend
// itself may return either this or a full RFC 3339 timestamp.
const dueDateFormat = "2006-01-02"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse decodes {token, ...}; extra fields are ignored.
type authResponse struct {
	Token string `json:"token"`
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type patchRequest struct {
	IsCompleted bool `json:"isCompleted"`
}

// taskPayload is the backend's task record.
type taskPayload struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

func (p taskPayload) toTask() (service.Task, error) {
	t := service.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Completed:   p.IsCompleted,
	}
	if p.DueDate != "" {
		due, err := parseDueDate(p.DueDate)
		if err != nil {
			return service.Task{}, fmt.Errorf("task %s: %w", p.ID, err)
		}
		t.DueDate = &due
	}
	return t, nil
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dueDateFormat, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q", s)
}
