// Package session tracks whether a user is authenticated and who they are,
// synchronized with an external credential store. The store, not this
// package, is the durable source of truth: Refresh re-reads it, and a
// corrupt persisted payload silently resolves to Anonymous instead of
// crashing anything.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
)

// Credential store keys and their lifetime. Both keys share the 7-day expiry.
const (
	TokenKey = "auth_token"
	UserKey  = "user_data"
	TTL      = 7 * 24 * time.Hour
)

// Store abstracts the credential store backing a session (HTTP cookies in
// production, an in-memory map in tests).
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
	Remove(key string)
}

// Manager holds the in-process authentication state. Two states exist:
// Anonymous and Authenticated(user). Login and Logout are the only
// transitions; Refresh resynchronizes from the store.
type Manager struct {
	store Store

	mu            sync.Mutex
	authenticated bool
	user          *models.UserResponse
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Login transitions to Authenticated(user) and persists both credential
// keys. It does not perform any network call itself; callers invoke it after
// the external auth service has already succeeded.
func (m *Manager) Login(user models.UserResponse, token string) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	m.store.Set(TokenKey, token, TTL)
	m.store.Set(UserKey, string(payload), TTL)

	m.mu.Lock()
	m.authenticated = true
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Logout transitions to Anonymous. In-process state is cleared first, so a
// Refresh racing a slow external removal still observes Anonymous.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.authenticated = false
	m.user = nil
	m.mu.Unlock()

	m.store.Remove(TokenKey)
	m.store.Remove(UserKey)
}

// Refresh re-reads the credential store. Missing token, missing user payload,
// or an unparseable user payload all resolve to Anonymous; a corrupted
// session forces re-authentication, never an error.
func (m *Manager) Refresh() {
	token, ok := m.store.Get(TokenKey)
	if !ok || token == "" {
		m.reset()
		return
	}

	payload, ok := m.store.Get(UserKey)
	if !ok || payload == "" {
		m.reset()
		return
	}

	var user models.UserResponse
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		m.reset()
		return
	}

	m.mu.Lock()
	m.authenticated = true
	m.user = &user
	m.mu.Unlock()
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.authenticated = false
	m.user = nil
	m.mu.Unlock()
}

// IsAuthenticated reports whether the manager currently holds a user.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// CurrentUser returns the authenticated user, if any.
func (m *Manager) CurrentUser() (models.UserResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.authenticated || m.user == nil {
		return models.UserResponse{}, false
	}
	return *m.user, true
}
