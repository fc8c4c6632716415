package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys. Session state lives outside the main persistence manager:
// it must survive a store invalidation and be readable before Init.
const (
	KeyToken         = "session_token"
	KeyCurrentUser   = "session_user_id"
	KeyNotifPrefs    = "notification_prefs"
	defaultSessionFN = "session.json"
)

// Store is a small durable key-value map for session state: the bearer token,
// the active user id, and the serialized notification preferences. It is a
// process-wide singleton in practice, created once at startup; all access is
// mutex-guarded.
type Store struct {
	path string

	mu     sync.Mutex
	loaded bool
	values map[string]string
}

// NewStore creates a session store persisted under dir. An empty dir keeps
// the store memory-only, which tests use.
func NewStore(dir string) *Store {
	s := &Store{values: map[string]string{}}
	if dir != "" {
		s.path = filepath.Join(dir, defaultSessionFN)
	}
	return s
}

// Get returns the value under key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.values[key]
}

// Set stores value under key and persists immediately.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.values[key] = value
	return s.flush()
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	delete(s.values, key)
	return s.flush()
}

// Clear wipes all session state. Called on logout and on auth expiry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.values = map[string]string{}
	return s.flush()
}

// Token returns the bearer token, or "" when no session is active.
func (s *Store) Token() string { return s.Get(KeyToken) }

// SetToken stores the bearer token.
func (s *Store) SetToken(token string) error { return s.Set(KeyToken, token) }

// CurrentUserID returns the active user id, or "".
func (s *Store) CurrentUserID() string { return s.Get(KeyCurrentUser) }

// SetCurrentUserID stores the active user id.
func (s *Store) SetCurrentUserID(id string) error { return s.Set(KeyCurrentUser, id) }

// GetJSON decodes the value under key into out. Returns false when absent.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	raw := s.Get(key)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decoding session value %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding session value %s: %w", key, err)
	}
	return s.Set(key, string(data))
}

// load reads the backing file once. Callers hold the mutex.
func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var values map[string]string
	if json.Unmarshal(data, &values) == nil && values != nil {
		s.values = values
	}
}

// flush writes the current map to disk. Callers hold the mutex.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}
	return nil
}
