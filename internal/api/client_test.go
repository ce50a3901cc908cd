package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskdeck/internal/api"
)

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c, err := api.New(srv.URL, api.AuthClient(ctx, "abc123"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out map[string]any
	if err := c.Do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("expected %q, got %q", "Bearer abc123", gotAuth)
	}
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := api.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out map[string]any
	if err := c.Do(context.Background(), http.MethodPost, "/auth/login", map[string]string{"email": "a"}, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already registered"}`))
	}))
	defer srv.Close()

	c, err := api.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Do(context.Background(), http.MethodPost, "/auth/register", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	se, ok := err.(*api.StatusError)
	if !ok {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if se.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, se.Code)
	}
	if se.Message != "email already registered" {
		t.Errorf("server message not passed through, got %q", se.Message)
	}
	if got := api.ServerMessage(err, "fallback"); got != "email already registered" {
		t.Errorf("ServerMessage = %q", got)
	}
}

func TestIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := api.New(srv.URL, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = c.Do(context.Background(), http.MethodGet, "/tasks", nil, nil)
	if !api.IsUnauthorized(err) {
		t.Errorf("expected IsUnauthorized for 401, got %v", err)
	}

	srv500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv500.Close()

	c2, _ := api.New(srv500.URL, nil)
	err = c2.Do(context.Background(), http.MethodGet, "/tasks", nil, nil)
	if api.IsUnauthorized(err) {
		t.Error("500 must not be treated as unauthorized")
	}
}

func TestServerMessageFallback(t *testing.T) {
	err := &api.StatusError{Code: 500}
	if got := api.ServerMessage(err, "generic"); got != "generic" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestInvalidBaseURL(t *testing.T) {
	if _, err := api.New("not a url", nil); err == nil {
		t.Error("expected an error for an invalid base URL")
	}
	if _, err := api.New("/relative/only", nil); err == nil {
		t.Error("expected an error for a base URL without host")
	}
}
