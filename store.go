package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-errors"
)

// MemoryStore keeps the token in process memory. Useful for tests and for
// runs that should not leave a token behind.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileStore persists the token to a single file so a session survives
// process restarts. The file is owner-only; absence means anonymous.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, ErrStoreFailure.Category, "failed to read token file").
			WithTextCode(ErrStoreFailure.TextCode)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, ErrStoreFailure.Category, "failed to create token directory").
			WithTextCode(ErrStoreFailure.TextCode)
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, ErrStoreFailure.Category, "failed to write token file").
			WithTextCode(ErrStoreFailure.TextCode)
	}

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, ErrStoreFailure.Category, "failed to remove token file").
			WithTextCode(ErrStoreFailure.TextCode)
	}

	return nil
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*FileStore)(nil)
