package client

import (
	"context"
	"sync"
)

// session holds the credentials and the current token. The token moves
// through three states: an anonymous session never has one, a credentialed
// session gains one on login and loses it on logout. Reads vastly
// outnumber writes, so an RWMutex guards it.
type session struct {
	username string
	password string

	mu    sync.RWMutex
	token string
}

func newSession(username, password string) *session {
	return &session{username: username, password: password}
}

// hasCredentials reports whether the session can ever log in.
func (s *session) hasCredentials() bool {
	return s.username != "" || s.password != ""
}

// Token implements the transport's token source. An empty result sends
// the request unauthenticated.
func (s *session) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *session) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

func (s *session) clearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
}

// loggedIn reports whether a token is currently held.
func (s *session) loggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != ""
}
