package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Durable storage keys.
const (
	KeyUsername    = "greenmason_username"
	KeyDisplayName = "greenmason_display_name"
)

// Durable is string-valued key/value storage that survives restarts.
// Get returns "" for a missing key.
type Durable interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// DefaultPath returns <user config dir>/greenmason/session.json, creating the directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, "greenmason")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// FileDurable keeps its keys in a single JSON object on disk.
type FileDurable struct {
	mu   sync.Mutex
	path string
}

func NewFileDurable(path string) *FileDurable {
	return &FileDurable{path: path}
}

func (f *FileDurable) Path() string { return f.path }

func (f *FileDurable) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return values, nil
}

func (f *FileDurable) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileDurable) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (f *FileDurable) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *FileDurable) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

// MemoryDurable is an in-process Durable, used by tests and --ephemeral runs.
type MemoryDurable struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryDurable() *MemoryDurable {
	return &MemoryDurable{values: map[string]string{}}
}

func (m *MemoryDurable) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryDurable) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryDurable) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
