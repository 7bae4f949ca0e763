package token

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jobmatch/webclient/internal/errors"
)

// FileStore persists the credential as a single file on disk. This is the
// page-scoped storage location; the request-scoped cookie is written by the
// login handlers.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "read token file %s", s.path)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, "create token dir for %s", s.path)
	}
	if err := os.WriteFile(s.path, []byte(value), 0o600); err != nil {
		return errors.Wrapf(err, "write token file %s", s.path)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove token file %s", s.path)
	}
	return nil
}
