// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All REST calls go through this interface.
// Commands and the TUI never touch the wire format directly.
type Service interface {
	// Register creates an account and returns the session token.
	Register(ctx context.Context, name, email, password string) (string, error)

	// Login authenticates and returns the session token.
	Login(ctx context.Context, email, password string) (string, error)

	// ListTasks returns all tasks of the authenticated user in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the server's record,
	// including the assigned ID.
	CreateTask(ctx context.Context, draft TaskDraft) (Task, error)

	// SetCompleted sends a partial update of the completion flag and
	// returns the server's updated record.
	SetCompleted(ctx context.Context, id string, completed bool) (Task, error)

	// DeleteTask deletes a task. The server returns no body; a nil error
	// means the delete was accepted.
	DeleteTask(ctx context.Context, id string) error
}
