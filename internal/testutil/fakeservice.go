// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"taskdeck/internal/api"
	"taskdeck/internal/service"
)

// DefaultToken is the token the fake issues on login/register.
const DefaultToken = "test-token"

// ErrNotFound is returned when a task id does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int

	// Token is returned by Login and Register.
	Token string

	// Unauthorized makes every authenticated method fail with a 401
	// StatusError, simulating an expired token.
	Unauthorized bool

	// OnUpdate is applied server-side to the record SetCompleted returns,
	// simulating server side effects the client must reconcile to.
	OnUpdate func(t *service.Task)

	// Error injection for testing
	RegisterErr     error
	LoginErr        error
	ListTasksErr    error
	CreateTaskErr   error
	SetCompletedErr error
	DeleteTaskErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Token: DefaultToken}
}

// AddTask adds an open task with the given id and title.
func (f *FakeService) AddTask(id, title string) {
	f.PutTask(service.Task{ID: id, Title: title})
}

// PutTask adds a task record as-is.
func (f *FakeService) PutTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// TaskCount returns the number of stored tasks.
func (f *FakeService) TaskCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tasks)
}

func (f *FakeService) unauthorized() error {
	return &api.StatusError{Code: http.StatusUnauthorized, Message: "unauthorized"}
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, name, email, password string) (string, error) {
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	return f.Token, nil
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.Token, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.Unauthorized {
		return nil, f.unauthorized()
	}
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	if f.Unauthorized {
		return service.Task{}, f.unauthorized()
	}
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	t := service.Task{
		ID:          fmt.Sprintf("t%d", f.nextID),
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// SetCompleted implements service.Service.
func (f *FakeService) SetCompleted(ctx context.Context, id string, completed bool) (service.Task, error) {
	if f.Unauthorized {
		return service.Task{}, f.unauthorized()
	}
	if f.SetCompletedErr != nil {
		return service.Task{}, f.SetCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = completed
			if f.OnUpdate != nil {
				f.OnUpdate(&f.tasks[i])
			}
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.Unauthorized {
		return f.unauthorized()
	}
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
