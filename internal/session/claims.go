package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession is returned when no token is stored.
var ErrNoSession = errors.New("not logged in")

// Claims describes what the stored bearer token says about the session.
// Decoded without signature verification: the client displays claims, the
// backend is the only party that verifies them.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	ExpiresAt *time.Time
}

// Claims decodes the stored token's JWT claims for display.
// Returns ErrNoSession when logged out and an error when the token is not
// a parseable JWT (opaque tokens are valid sessions but carry no claims).
func (s *Store) Claims() (Claims, error) {
	token, ok := s.Current()
	if !ok {
		return Claims{}, ErrNoSession
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, err
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("unexpected claims type")
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if email, ok := mc["email"].(string); ok {
		c.Email = email
	}
	if name, ok := mc["name"].(string); ok {
		c.Name = name
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		c.ExpiresAt = &t
	}
	return c, nil
}
