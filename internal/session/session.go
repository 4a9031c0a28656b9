package session

import (
	"errors"
	"fmt"
)

var ErrEmptyToken = errors.New("empty session token")

// Session is the admin sign-in state owned by the application root.
// The token is read from the Persister on every call and never cached,
// so a token revoked elsewhere is noticed on the next request.
type Session struct {
	store Persister
}

func New(store Persister) *Session {
	return &Session{store: store}
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() (string, error) {
	token, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	return token, nil
}

func (s *Session) SignIn(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *Session) SignOut() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (s *Session) Authenticated() bool {
	token, err := s.Token()
	return err == nil && token != ""
}
