// Package taskapi implements the service.Service interface over the task
// backend's REST API.
package taskapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/service"
)

// Client implements service.Service against the REST backend.
type Client struct {
	api *api.Client
}

// New creates a backend client. token may be empty, in which case only the
// auth endpoints are usable; authenticated endpoints will get a 401 back.
func New(ctx context.Context, cfg *config.Config, token string) (*Client, error) {
	var hc *http.Client
	if token != "" {
		hc = api.AuthClient(ctx, token)
	}
	a, err := api.New(cfg.BaseURL, hc)
	if err != nil {
		return nil, err
	}
	return &Client{api: a}, nil
}

// NewWithBase creates a client against an explicit base URL with a custom
// HTTP client (for testing).
func NewWithBase(baseURL string, hc *http.Client) (*Client, error) {
	a, err := api.New(baseURL, hc)
	if err != nil {
		return nil, err
	}
	return &Client{api: a}, nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := registerRequest{Name: name, Email: email, Password: password}
	var resp authResponse
	if err := c.api.Do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("register: no token in response")
	}
	return resp.Token, nil
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := loginRequest{Email: email, Password: password}
	var resp authResponse
	if err := c.api.Do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: no token in response")
	}
	return resp.Token, nil
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var payload []taskPayload
	if err := c.api.Do(ctx, http.MethodGet, "/tasks", nil, &payload); err != nil {
		return nil, err
	}
	tasks := make([]service.Task, 0, len(payload))
	for _, p := range payload {
		t, err := p.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	body := createRequest{
		Title:       draft.Title,
		Description: draft.Description,
	}
	if draft.DueDate != nil {
		body.DueDate = draft.DueDate.Format(dueDateFormat)
	}
	var p taskPayload
	if err := c.api.Do(ctx, http.MethodPost, "/tasks", body, &p); err != nil {
		return service.Task{}, err
	}
	return p.toTask()
}

// SetCompleted implements service.Service.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) (service.Task, error) {
	body := patchRequest{IsCompleted: completed}
	var p taskPayload
	if err := c.api.Do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), body, &p); err != nil {
		return service.Task{}, err
	}
	return p.toTask()
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.api.Do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
