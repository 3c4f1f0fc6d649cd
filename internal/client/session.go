package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"smartpg/internal/domain/model"
)

// sessionFileName mirrors the browser local-storage key the web client uses.
const sessionFileName = "pg_user.json"

// Session is the one record the store holds: the logged-in user plus the
// bearer token the server minted for it.
type Session struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// SessionStore persists one Session between runs. The stored record IS the
// session; there is no expiry or integrity check, the backend re-validates
// the token on every call.
type SessionStore struct {
	path string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionFileName)}
}

// Restore reads the persisted session. Anything that cannot be read or
// parsed is treated as no session, never as a fatal condition.
func (s *SessionStore) Restore() *Session {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	if sess.User == nil || sess.User.ID == "" {
		return nil
	}
	return &sess
}

func (s *SessionStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
