package tasklist

import (
	"context"
	"errors"
	"strings"

	"taskdeck/internal/service"
)

// ErrTitleRequired is returned by Create for an empty or blank title.
var ErrTitleRequired = errors.New("title required")

// Repository performs task CRUD against the backend and keeps the local
// Store in sync with the server's responses. Every call requires a valid
// session; on any error, including an authentication rejection, the local
// list is left unchanged and the error is returned for the caller to map.
type Repository struct {
	svc   service.Service
	store *Store
}

// NewRepository creates a repository over the given backend and store.
func NewRepository(svc service.Service, store *Store) *Repository {
	return &Repository{svc: svc, store: store}
}

// Store returns the repository's local list.
func (r *Repository) Store() *Store {
	return r.store
}

// List fetches all tasks and replaces the entire local list with the
// server's sequence.
func (r *Repository) List(ctx context.Context) error {
	tasks, err := r.svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	r.store.ReplaceAll(tasks)
	return nil
}

// Create creates a task and appends exactly the server-returned record to
// the local list. The client never synthesizes an id or echoes its own
// input back as the authoritative task.
func (r *Repository) Create(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return service.Task{}, ErrTitleRequired
	}
	created, err := r.svc.CreateTask(ctx, draft)
	if err != nil {
		return service.Task{}, err
	}
	r.store.Append(created)
	return created, nil
}

// Delete deletes the task and removes it from the local list. Removal
// happens only on a success status; whether the id still existed
// server-side is the server's concern.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.svc.DeleteTask(ctx, id); err != nil {
		return err
	}
	r.store.Remove(id)
	return nil
}

// ToggleComplete sends the negation of the task's current completion flag
// and reconciles the local copy to the server's returned representation.
// Reconciling rather than flipping locally guards against drift when the
// server applies side effects of its own.
func (r *Repository) ToggleComplete(ctx context.Context, task service.Task) (service.Task, error) {
	updated, err := r.svc.SetCompleted(ctx, task.ID, !task.Completed)
	if err != nil {
		return service.Task{}, err
	}
	r.store.Reconcile(updated)
	return updated, nil
}
