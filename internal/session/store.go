// internal/session/store.go
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Session is the persisted record of an authenticated contact. It survives
// restarts and is replaced only by a successful login. There is currently no
// UI path that clears it; Clear exists for the eventual logout flow.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	ContactID     string `json:"id"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Name          string `json:"name,omitempty"`
}

// Store holds the single session record.
type Store interface {
	Get() (Session, bool)
	Set(Session) error
	Clear() error
}

// FileStore persists the session as JSON at a fixed path.
type FileStore struct {
	path    string
	logger  *zap.Logger
	current *Session
}

// NewFileStore creates a store backed by the given path and loads any
// persisted session into memory.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	fs := &FileStore{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A mangled session file should not brick the app; treat it as
		// logged out and overwrite on the next login.
		logger.Warn("Discarding unreadable session file", zap.Error(err))
		return fs, nil
	}

	if sess.Authenticated && sess.ContactID != "" {
		fs.current = &sess
		logger.Debug("Restored session", zap.String("contact_id", sess.ContactID))
	}
	return fs, nil
}

// Get returns the current session, if an authenticated one exists.
func (fs *FileStore) Get() (Session, bool) {
	if fs.current == nil {
		return Session{}, false
	}
	return *fs.current, true
}

// Set replaces the session and persists it.
func (fs *FileStore) Set(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(fs.path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	fs.current = &sess
	return nil
}

// Clear removes the persisted session.
func (fs *FileStore) Clear() error {
	fs.current = nil
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	current *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Get() (Session, bool) {
	if ms.current == nil {
		return Session{}, false
	}
	return *ms.current, true
}

func (ms *MemoryStore) Set(sess Session) error {
	ms.current = &sess
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.current = nil
	return nil
}
