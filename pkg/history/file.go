package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the log file inside the history directory.
const FileName = "logs.json"

// DefaultDir returns ~/.autoreadme.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".autoreadme"), nil
}

// FileStore keeps entries as a JSON array in <dir>/logs.json.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a file store in dir, creating the directory if
// needed. If dir is empty, DefaultDir is used.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the log file.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path() string {
	return filepath.Join(s.dir, FileName)
}

// Append implements Store.
func (s *FileStore) Append(ctx context.Context, message string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return Entry{}, err
	}
	e := NewEntry(message)
	if err := s.write(append(entries, e)); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// List implements Store.
func (s *FileStore) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Clear implements Store.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// read returns the stored entries. A missing or corrupt file reads as an
// empty history.
func (s *FileStore) read() ([]Entry, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (s *FileStore) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
