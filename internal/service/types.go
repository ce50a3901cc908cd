// Package service defines the backend-agnostic interface for task operations.
package service

import "time"

// Task represents a single task as the server returned it.
// ID is server-assigned and unique within a user's list.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time // nil when the task has no due date
	Completed   bool
}

// TaskDraft is the client's input for creating a task. Title is required;
// the rest is optional. The server's returned Task is authoritative.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     *time.Time
}
