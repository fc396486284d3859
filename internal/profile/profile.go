// Package profile holds the user's display name and job title.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
)

// ErrIncomplete rejects an edit with a blank field.
var ErrIncomplete = errors.New("username and job are both required")

type Store struct {
	storage store.Storage
	logger  *log.Logger
	current model.Profile
}

// Load reads the persisted profile; absent or unreadable means empty fields.
func Load(st store.Storage, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{storage: st, logger: logger}

	b, err := st.Get(store.KeyProfile)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p, err := model.DecodeProfile(b)
	if err != nil {
		logger.Warn("ignoring unreadable profile document", "err", err)
		return s, nil
	}
	s.current = p
	return s, nil
}

func (s *Store) Get() model.Profile { return s.current }

// NeedsPrompt reports whether the edit prompt must be opened on startup.
func (s *Store) NeedsPrompt() bool { return !s.current.Complete() }

// Edit validates and commits new values. On any error the previous
// profile stays in place, both in memory and in storage.
func (s *Store) Edit(username, job string) error {
	next := model.Profile{
		Username: strings.TrimSpace(username),
		Job:      strings.TrimSpace(job),
	}
	if !next.Complete() {
		return ErrIncomplete
	}
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.storage.Set(store.KeyProfile, b); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.current = next
	s.logger.Debug("profile saved", "username", next.Username)
	return nil
}
