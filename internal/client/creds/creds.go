// Package creds stores the bearer credential and display name between runs.
// The store is a small user-controlled key-value blob: one value is written
// at login and cleared at logout, and every component that talks to the
// remote API reads the token through it.
package creds

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Well-known keys.
const (
	KeyToken = "token"
	KeyName  = "name"
)

// Store is the injected credential capability: get, set, and clear string
// values by key.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Clear() error
}

// FileStore persists credentials as a JSON file. Values are read into
// memory once and kept in sync with the file on every write.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewFileStore loads the credential file at path, tolerating a missing file.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		// a corrupt credential file is treated as logged out
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}
