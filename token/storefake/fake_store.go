package storefake

import (
	"sync"

	"github.com/jobmatch/webclient/internal/errors"
)

// FakeStore is an in-memory token.Store for tests. Individual operations can
// be made to fail to exercise degraded-storage paths.
type FakeStore struct {
	mu    sync.Mutex
	value string

	FailLoad  bool
	FailSave  bool
	FailClear bool
}

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (s *FakeStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailLoad {
		return "", errors.ErrStorageUnavailable
	}
	return s.value, nil
}

func (s *FakeStore) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave {
		return errors.ErrStorageUnavailable
	}
	s.value = value
	return nil
}

func (s *FakeStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailClear {
		return errors.ErrStorageUnavailable
	}
	s.value = ""
	return nil
}

// Value returns the currently persisted value.
func (s *FakeStore) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
