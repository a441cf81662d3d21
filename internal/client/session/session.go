// Package session holds the in-memory authentication state of the running
// application: the current user and their token, with the orchestration
// around register, login, logout, and startup restoration.
//
// A single Session is constructed at application start and handed to every
// component that needs it (navigation guard, HTTP client); there is no
// ambient global. The current user and the token are always set together or
// cleared together, never one without the other.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/moonui/moonui/internal/client/auth"
	"github.com/moonui/moonui/internal/client/models"
	"github.com/moonui/moonui/internal/client/storage"
	"github.com/moonui/moonui/internal/logging"
)

type Session struct {
	mu          sync.Mutex
	currentUser *models.User
	token       string

	auth  *auth.Service
	store *storage.Store
	log   logging.Logger
}

func New(authService *auth.Service, store *storage.Store, log logging.Logger) *Session {
	return &Session{auth: authService, store: store, log: log}
}

// Register creates an account and, on success, starts a session for it.
// Registration always persists remember-me as true, regardless of the
// credential flag; this matches what the application has always done.
func (s *Session) Register(ctx context.Context, creds auth.RegisterCredentials) (bool, string) {
	res := s.auth.Register(ctx, creds)
	if !res.Success || res.User == nil || res.Token == "" {
		return false, res.Message
	}

	s.setAuth(res.User, res.Token)
	s.store.SetCurrentUser(ctx, res.User)
	s.store.SetAuthToken(ctx, res.Token)
	s.store.SetRememberMe(ctx, true)

	return true, res.Message
}

// Login verifies credentials and, on success, starts a session. Remember-me
// is persisted as given (default false).
func (s *Session) Login(ctx context.Context, creds auth.LoginCredentials) (bool, string) {
	res := s.auth.Login(ctx, creds)
	if !res.Success || res.User == nil || res.Token == "" {
		return false, res.Message
	}

	s.setAuth(res.User, res.Token)
	s.store.SetCurrentUser(ctx, res.User)
	s.store.SetAuthToken(ctx, res.Token)
	s.store.SetRememberMe(ctx, creds.RememberMe)

	return true, res.Message
}

// Logout clears the in-memory state and the persisted auth keys. Calling it
// while already logged out is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.clearAuth()
	s.auth.Logout(ctx)
}

// CheckAuth restores a session from the store. It is meant to run once at
// application start.
//
// The session is restored only when remember-me is set, a token is present,
// the token validates, and its user still exists; any other combination
// clears all auth state. A token within a day of expiry is restored with a
// warning; there is no automatic renewal.
func (s *Session) CheckAuth(ctx context.Context) {
	if !s.store.RememberMe(ctx) {
		s.Logout(ctx)
		return
	}

	token := s.store.AuthToken(ctx)
	if token == "" {
		s.Logout(ctx)
		return
	}

	user := s.auth.ValidateToken(ctx, token)
	if user == nil {
		s.log.Info(ctx, "stored token invalid or expired, logging out")
		s.Logout(ctx)
		return
	}

	s.setAuth(user, token)
	s.log.Info(ctx, "session restored", "user", user.Username)

	if auth.IsTokenExpiringSoon(token) {
		remaining := auth.TokenRemainingTime(token)
		s.log.Warn(ctx, "token expires soon",
			"user", user.Username,
			"hours_left", int(remaining/time.Hour))
	}
}

// UpdateUser overwrites the current user and persists it, both as the
// current-user snapshot and inside the user collection.
func (s *Session) UpdateUser(ctx context.Context, user models.User) error {
	if err := s.store.SaveUser(ctx, user); err != nil {
		return err
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()

	s.store.SetCurrentUser(ctx, &user)
	return nil
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Token returns the session token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether both a user and a token are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser != nil && s.token != ""
}

func (s *Session) setAuth(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.currentUser = &u
	s.token = token
}

func (s *Session) clearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	s.token = ""
}
