// Package memstore is an in-process Storage used by tests and --backend=memory.
package memstore

import (
	"errors"
	"sync"

	"github.com/idilsaglam/tasklist/internal/store"
)

type Store struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes Set return ErrWriteFailed, for exercising rollback paths.
	FailWrites bool
}

var ErrWriteFailed = errors.New("memstore: write failed")

func New() *Store {
	return &Store{data: map[string][]byte{}}
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error { return nil }

var _ store.Storage = (*Store)(nil)
