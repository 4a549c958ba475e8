package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const fileVersion = "1"

// ErrCorrupt is returned by Get when the document on disk could not be parsed.
var ErrCorrupt = errors.New("preferences file is corrupt")

// preferencesFile is the JSON layout written by FileStore.
type preferencesFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences as a JSON document on disk
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
	// loadErr is reported by Get until the next successful Set rewrites the file.
	loadErr error
}

// NewFileStore creates a FileStore and loads it from disk if the file exists.
// A document that fails to parse is moved aside to path+".corrupt" and the
// store starts empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("preferences path is required")
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	switch err := s.load(); {
	case err == nil, errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, ErrCorrupt):
		s.loadErr = err
		_ = os.Rename(path, path+".corrupt")
	default:
		return nil, err
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// Get returns the value stored under key
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return "", false, s.loadErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set updates key and writes the whole document back to disk
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	s.loadErr = nil
	return nil
}

// save writes the document atomically. Callers hold the write lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(preferencesFile{Version: fileVersion, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Close is a no-op; every Set is already flushed.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
