package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidduboy2025-hash/soch-ai-showcase/models"
)

// memoryStore is a TTL-aware in-memory credential store for tests.
type memoryStore struct {
	values  map[string]string
	expires map[string]time.Time
	now     time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memoryStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	if !ok {
		return "", false
	}
	if exp, hasExp := s.expires[key]; hasExp && s.now.After(exp) {
		return "", false
	}
	return value, true
}

func (s *memoryStore) Set(key, value string, ttl time.Duration) {
	s.values[key] = value
	s.expires[key] = s.now.Add(ttl)
}

func (s *memoryStore) Remove(key string) {
	delete(s.values, key)
	delete(s.expires, key)
}

func testUser() models.UserResponse {
	return models.UserResponse{
		ID:           uuid.MustParse("018f4b2e-0000-7000-8000-000000000001"),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		MobileNumber: "9876543210",
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoginPersistsAndAuthenticates(t *testing.T) {
	store := newMemoryStore()
	mgr := NewManager(store)

	require.NoError(t, mgr.Login(testUser(), "token-123"))

	assert.True(t, mgr.IsAuthenticated())
	user, ok := mgr.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", user.Email)

	token, ok := store.Get(TokenKey)
	require.True(t, ok)
	assert.Equal(t, "token-123", token)
	_, ok = store.Get(UserKey)
	assert.True(t, ok)
}

func TestSevenDayExpiry(t *testing.T) {
	store := newMemoryStore()
	mgr := NewManager(store)
	require.NoError(t, mgr.Login(testUser(), "token-123"))

	store.now = store.now.Add(6 * 24 * time.Hour)
	mgr.Refresh()
	assert.True(t, mgr.IsAuthenticated(), "credentials are valid inside the 7-day window")

	store.now = store.now.Add(2 * 24 * time.Hour)
	mgr.Refresh()
	assert.False(t, mgr.IsAuthenticated(), "expired credentials resolve to Anonymous")
}

func TestLogoutClearsInProcessStateImmediately(t *testing.T) {
	store := newMemoryStore()
	mgr := NewManager(store)
	require.NoError(t, mgr.Login(testUser(), "token-123"))

	// Simulate a store whose removal is delayed: keep the values around.
	delayed := &delayedRemovalStore{memoryStore: store}
	mgr = NewManager(delayed)
	mgr.Refresh()
	require.True(t, mgr.IsAuthenticated())

	mgr.Logout()

	assert.False(t, mgr.IsAuthenticated(), "logout clears in-process state even before the store catches up")
	_, ok := mgr.CurrentUser()
	assert.False(t, ok)
}

// delayedRemovalStore ignores Remove, modeling an external store that has not
// evicted credentials yet.
type delayedRemovalStore struct {
	*memoryStore
}

func (s *delayedRemovalStore) Remove(key string) {}

func TestRefreshWithCorruptUserPayload(t *testing.T) {
	store := newMemoryStore()
	store.Set(TokenKey, "token-123", TTL)
	store.Set(UserKey, "{not json", TTL)

	mgr := NewManager(store)
	mgr.Refresh()

	assert.False(t, mgr.IsAuthenticated(), "corrupt user payload must resolve to Anonymous, not crash")
	_, ok := mgr.CurrentUser()
	assert.False(t, ok)
}

func TestRefreshWithMissingToken(t *testing.T) {
	store := newMemoryStore()
	store.Set(UserKey, `{"email":"ada@example.com"}`, TTL)

	mgr := NewManager(store)
	mgr.Refresh()

	assert.False(t, mgr.IsAuthenticated(), "a user payload without a token is not a session")
}

func TestRefreshRoundTrip(t *testing.T) {
	store := newMemoryStore()
	first := NewManager(store)
	require.NoError(t, first.Login(testUser(), "token-123"))

	// A fresh manager over the same store picks the session back up.
	second := NewManager(store)
	second.Refresh()

	user, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, testUser().ID, user.ID)
	assert.Equal(t, "Ada", user.FirstName)
}
