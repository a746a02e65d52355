// Package auth owns the client's session lifecycle: the session manager is
// the single writer of the session token, and the flow drives the external
// identity handshake.
package auth

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gta5broo/cizgihubdeneme/internal/models"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
)

// API is the slice of the ÇizgiHub client the auth package needs.
// Implemented by [services.CizgiHubService].
type API interface {
	Me(ctx context.Context) (*models.User, error)
	ExchangeSession(ctx context.Context, sessionID string) (*models.AuthExchange, error)
	Logout(ctx context.Context) error
	SetToken(token string)
	ClearToken()
}

// SessionStore persists the opaque session token between runs.
// Implemented by [repositories.SessionRepository].
type SessionStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// Manager is the single source of truth for "is a user authenticated".
// No other component reads or writes the session token directly.
//
// Invariant: the in-memory user is non-nil exactly when a usable token was
// present at the last check or login, enforced by running CheckSession at
// startup and after every login/logout.
type Manager struct {
	api    API
	store  SessionStore
	logger *log.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// NewManager creates a session manager. The manager starts in the loading
// state until the first CheckSession completes.
func NewManager(api API, store SessionStore, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{
		api:     api,
		store:   store,
		logger:  logger,
		loading: true,
	}
}

// CheckSession queries the API for the identity behind the stored token.
// Any failure (no token, network error, 401) silently results in a logged-out
// state; the loading flag is always cleared when the check finishes. No
// retries. Returns the resulting user, nil when logged out.
func (m *Manager) CheckSession(ctx context.Context) *models.User {
	defer m.setLoading(false)

	token, err := m.store.Load()
	if err != nil {
		m.logger.Warnf("session load failed: %v", err)
	}
	if token == "" {
		m.setUser(nil)
		m.api.ClearToken()
		return nil
	}

	m.api.SetToken(token)
	user, err := m.api.Me(ctx)
	if err != nil {
		m.logger.Debugf("not authenticated: %v", err)
		m.setUser(nil)
		return nil
	}

	m.setUser(user)
	return user
}

// Login stores the session token with its 7-day expiry and sets the user
// synchronously. Does not contact the network.
func (m *Manager) Login(token string, user models.User) {
	m.api.SetToken(token)
	if err := m.store.Save(token); err != nil {
		m.logger.Warnf("failed to persist session: %v", err)
	}
	m.setUser(&user)
	m.setLoading(false)
}

// Logout notifies the API to invalidate the session server-side, then
// unconditionally clears the local token and user. A failed server call is
// logged, never surfaced.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.logger.Errorf("logout error: %v", err)
	}

	if err := m.store.Clear(); err != nil {
		m.logger.Warnf("failed to clear stored session: %v", err)
	}
	m.api.ClearToken()
	m.setUser(nil)
}

// User returns the currently authenticated user, nil when logged out.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Loading reports whether the initial session check is still in flight.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// IsAdmin reports whether the current user holds the admin flag.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsAdmin
}

func (m *Manager) setUser(u *models.User) {
	m.mu.Lock()
	m.user = u
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
