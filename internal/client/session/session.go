// Package session owns the process-wide authentication state: the current
// credential token and the principal decoded from it. Mutation happens at
// exactly three points — login success, logout, and an observed
// authentication rejection — never concurrently with itself.
package session

import (
	"context"
	"sync"

	"github.com/Fyandono/project-maintenance-system/internal/client/repositories/tokens"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

// Navigator abstracts forced navigation so the rejection side effect stays
// testable. In the console it prints the redirect and flips the REPL back
// to its logged-out prompt.
type Navigator interface {
	NavigateLogin(ctx context.Context)
}

// Session holds the current token and principal, persisted through the
// token repository so a restart can resume a still-valid session.
type Session struct {
	mu        sync.RWMutex
	token     string
	principal *Principal

	repo tokens.Repository
	nav  Navigator
	log  logging.Logger
}

func New(repo tokens.Repository, nav Navigator, log logging.Logger) *Session {
	return &Session{repo: repo, nav: nav, log: log}
}

// Resume loads a persisted token at startup. A missing, invalid, or expired
// token leaves the session logged out without error: the user simply logs
// in again.
func (s *Session) Resume(ctx context.Context) error {
	token, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	principal, err := DecodePrincipal(token)
	if err != nil {
		s.log.Warn(ctx, "stored token unusable, clearing", "error", err)
		return s.repo.Clear(ctx)
	}

	s.mu.Lock()
	s.token = token
	s.principal = principal
	s.mu.Unlock()

	s.log.Info(ctx, "session resumed", "user", principal.Username)
	return nil
}

// Login installs the token returned by the backend, decodes the principal,
// and persists the credential.
func (s *Session) Login(ctx context.Context, token string) (*Principal, error) {
	principal, err := DecodePrincipal(token)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = token
	s.principal = principal
	s.mu.Unlock()

	return principal, nil
}

// Logout erases the credential, in memory and at rest.
func (s *Session) Logout(ctx context.Context) error {
	s.clear()
	return s.repo.Clear(ctx)
}

// HandleAuthReject is invoked by the gateway on the first observed 401 from
// a protected endpoint: the token is erased and the user is sent to login.
func (s *Session) HandleAuthReject(ctx context.Context) {
	s.clear()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored token", "error", err)
	}
	s.nav.NavigateLogin(ctx)
}

func (s *Session) clear() {
	s.mu.Lock()
	s.token = ""
	s.principal = nil
	s.mu.Unlock()
}

// Token returns the current credential token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Principal returns the authenticated principal, or nil when logged out.
func (s *Session) Principal() *Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// IsAuthenticated reports whether a current token is present.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}
