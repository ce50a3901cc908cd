// Package session owns the current authentication token.
//
// The token is an opaque bearer credential issued by the backend on
// login/register. It is persisted to disk so a session survives process
// restarts. No local validation is performed; validity is established
// lazily by the first authenticated call.
package session

import (
	"encoding/json"
	"os"
	"sync"

	"golang.org/x/oauth2"
)

// Store holds the current session token and persists it across restarts.
// Only Store mutates the session; all other components read it.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore creates a session store backed by the given token file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Login stores token as the current session and persists it with mode 0600.
func (s *Store) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok := oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}
	data, err := json.MarshalIndent(&tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Logout clears the session. Safe to call when already logged out.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Current returns the stored token, or ok=false when logged out.
func (s *Store) Current() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", false
	}
	if tok.AccessToken == "" {
		return "", false
	}
	return tok.AccessToken, true
}
