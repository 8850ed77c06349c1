package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrNotLoggedIn is returned by commands that need a current user when no
// session is stored.
var ErrNotLoggedIn = errors.New("not logged in: run 'taskctl login <email>' or 'taskctl signup <email>'")

// Session is the current user remembered between invocations.
type Session struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// SessionStore persists a single Session as a JSON file.
type SessionStore struct {
	path string
}

// NewSessionStore returns a store writing to path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load returns the stored session, or ErrNotLoggedIn when there is none.
func (s *SessionStore) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("decode session %s: %w", s.path, err)
	}
	if sess.UserID == "" {
		return Session{}, ErrNotLoggedIn
	}
	return sess, nil
}

// Save replaces the stored session. The file is written next to its final
// location and renamed so a crash never leaves half a session behind.
func (s *SessionStore) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
