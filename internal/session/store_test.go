package session_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskdeck/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "token.json"))
}

func TestLoginThenCurrent(t *testing.T) {
	s := newStore(t)

	if _, ok := s.Current(); ok {
		t.Fatal("expected no session before login")
	}

	if err := s.Login("abc123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	token, ok := s.Current()
	if !ok {
		t.Fatal("expected a session after login")
	}
	if token != "abc123" {
		t.Errorf("expected token %q, got %q", "abc123", token)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")

	s := session.NewStore(path)
	if err := s.Login("abc123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A new store over the same path simulates a process restart.
	s2 := session.NewStore(path)
	token, ok := s2.Current()
	if !ok || token != "abc123" {
		t.Errorf("expected persisted token %q, got %q (ok=%v)", "abc123", token, ok)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s := newStore(t)
	if err := s.Login("abc123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("expected no session after logout")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	s := newStore(t)

	// Never logged in; logging out twice must still succeed.
	if err := s.Logout(); err != nil {
		t.Fatalf("logout on empty session: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestClaimsFromJWT(t *testing.T) {
	s := newStore(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "ada@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := s.Login(signed); err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := s.Claims()
	if err != nil {
		t.Fatalf("claims: %v", err)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("expected email %q, got %q", "ada@example.com", claims.Email)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject %q, got %q", "u1", claims.Subject)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestClaimsWithoutSession(t *testing.T) {
	s := newStore(t)
	if _, err := s.Claims(); err != session.ErrNoSession {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestClaimsOpaqueToken(t *testing.T) {
	s := newStore(t)
	if err := s.Login("not-a-jwt"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := s.Claims(); err == nil {
		t.Error("expected an error for an opaque token")
	}
	// The session itself is still valid.
	if _, ok := s.Current(); !ok {
		t.Error("opaque token should still be a valid session")
	}
}
