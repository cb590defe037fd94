package hint

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the logged_in flag as a single file, the
// client-side analogue of the login cookie. The flag exists outside
// the query cache on purpose: it is a claim that a session may exist,
// consulted before any whoami call is made. Implements
// domain.HintStore.
type FileStore struct {
	path string
}

// NewFileStore creates a hint store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoggedIn reports whether the persisted flag claims an active login.
// A missing or unreadable file counts as logged out.
func (s *FileStore) LoggedIn() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(data), []byte("true"))
}

// SetLoggedIn writes or removes the flag. Only the login and logout
// flows call this.
func (s *FileStore) SetLoggedIn(v bool) error {
	if !v {
		err := os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte("true\n"), 0o600)
}

// MemoryStore is an in-memory hint store for tests.
type MemoryStore struct {
	loggedIn bool
}

func NewMemoryStore(loggedIn bool) *MemoryStore {
	return &MemoryStore{loggedIn: loggedIn}
}

func (s *MemoryStore) LoggedIn() bool { return s.loggedIn }

func (s *MemoryStore) SetLoggedIn(v bool) error {
	s.loggedIn = v
	return nil
}
