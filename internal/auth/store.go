package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store persists the session between runs.
type Store interface {
	// Load returns the stored session, or nil when nothing is stored.
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session in a YAML file readable only by the owner.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The directory is created on
// first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", f.path, err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", f.path, err)
	}
	if s.RefreshToken == "" && s.AccessToken == "" {
		return nil, nil
	}
	return &s, nil
}

// Save implements Store.
func (f *FileStore) Save(s *Session) error {
	if s == nil {
		return f.Clear()
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", f.path, err)
	}
	return nil
}

// Clear implements Store.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", f.path, err)
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

// NewMemoryStore returns a store seeded with s (which may be nil).
func NewMemoryStore(s *Session) *MemoryStore {
	m := &MemoryStore{}
	_ = m.Save(s)
	return m
}

// Load implements Store.
func (m *MemoryStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, nil
	}
	cp := *m.session
	return &cp, nil
}

// Save implements Store.
func (m *MemoryStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		m.session = nil
		return nil
	}
	cp := *s
	m.session = &cp
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	return m.Save(nil)
}
