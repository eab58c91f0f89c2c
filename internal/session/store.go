// Package session persists the logged-in identity across runs as two
// fixed-name entries under the config dir: a decimal userId and a
// username. Both present means a session exists; anything less reads as
// no session.
package session

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taskdeck/taskdeck/pkg/domain"
)

const (
	userIDKey   = "userId"
	usernameKey = "username"
)

// Store is the file-backed session store. A Store with an empty dir
// (no usable config location) is a no-op: writes succeed silently and
// reads report no session.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns ~/.taskdeck, or "" when the home dir is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskdeck")
}

// Save persists both session fields. Readers only ever observe a full
// session or none: Read requires both entries, so a failure between the
// two writes degrades to "no session" rather than a partial one.
func (s *Store) Save(userID int, username string) error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, userIDKey), []byte(strconv.Itoa(userID)), 0600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, usernameKey), []byte(username), 0600)
}

// Clear removes both entries. Clearing an absent session succeeds.
func (s *Store) Clear() error {
	if s.dir == "" {
		return nil
	}
	var firstErr error
	for _, key := range []string{userIDKey, usernameKey} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Read returns the persisted session, or nil if either entry is missing
// or malformed. It never fails: corrupted state is treated as absence.
func (s *Store) Read() *domain.Session {
	if s.dir == "" {
		return nil
	}
	rawID, err := os.ReadFile(filepath.Join(s.dir, userIDKey))
	if err != nil {
		return nil
	}
	rawName, err := os.ReadFile(filepath.Join(s.dir, usernameKey))
	if err != nil {
		return nil
	}
	username := strings.TrimSpace(string(rawName))
	userID, err := strconv.Atoi(strings.TrimSpace(string(rawID)))
	if err != nil || userID < 0 || username == "" {
		return nil
	}
	return &domain.Session{UserID: userID, Username: username}
}
