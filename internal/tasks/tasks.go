// Package tasks owns the ordered task sequence and mirrors it into storage.
//
// The in-memory sequence is the source of truth for a session. Storage is a
// passive mirror: read once by Load and overwritten after every successful
// mutation. A mutation whose write fails is rolled back, so each operation
// either fully applies or leaves the store untouched.
package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
)

// Validation outcomes. The sequence is unchanged whenever one is returned.
var (
	ErrBlank           = errors.New("message and deadline are required")
	ErrInvalidDeadline = errors.New("deadline is not a date")
	ErrOutOfRange      = errors.New("position out of range")
	ErrBoundary        = errors.New("already at the edge of the list")
)

type Store struct {
	storage store.Storage
	logger  *log.Logger
	now     func() time.Time
	tasks   []model.Task
}

type Option func(*Store)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Load reads the persisted sequence. A missing or unreadable document
// yields an empty list; only storage I/O failures are returned.
func Load(st store.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage: st,
		logger:  log.New(io.Discard),
		now:     time.Now,
		tasks:   []model.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}

	b, err := st.Get(store.KeyTasks)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	ts, err := model.DecodeTasks(b)
	if err != nil {
		s.logger.Warn("ignoring unreadable tasks document", "err", err)
		return s, nil
	}
	s.tasks = ts
	s.logger.Debug("tasks loaded", "count", len(ts))
	return s, nil
}

// Tasks returns a copy of the sequence.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

// Get returns the task at position.
func (s *Store) Get(position int) (model.Task, bool) {
	if position < 0 || position >= len(s.tasks) {
		return model.Task{}, false
	}
	return s.tasks[position], true
}

// Add appends a new pending task created now.
func (s *Store) Add(message, deadline string) error {
	message = strings.TrimSpace(message)
	deadline = strings.TrimSpace(deadline)
	if message == "" || deadline == "" {
		return ErrBlank
	}
	due, err := model.NormalizeDate(deadline)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDeadline, err)
	}
	t := model.Task{
		Message:   message,
		Deadline:  due,
		CreatedAt: model.FormatDate(s.now()),
	}
	next := append(s.Tasks(), t)
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("task added", "position", len(next)-1, "deadline", due)
	return nil
}

// Delete removes the task at position; later tasks shift down by one.
func (s *Store) Delete(position int) error {
	if position < 0 || position >= len(s.tasks) {
		return ErrOutOfRange
	}
	next := make([]model.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:position]...)
	next = append(next, s.tasks[position+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("task deleted", "position", position)
	return nil
}

// MoveUp swaps the task at position with its predecessor.
func (s *Store) MoveUp(position int) error {
	if position < 0 || position >= len(s.tasks) {
		return ErrOutOfRange
	}
	if position == 0 {
		return ErrBoundary
	}
	return s.swap(position, position-1)
}

// MoveDown swaps the task at position with its successor.
func (s *Store) MoveDown(position int) error {
	if position < 0 || position >= len(s.tasks) {
		return ErrOutOfRange
	}
	if position == len(s.tasks)-1 {
		return ErrBoundary
	}
	return s.swap(position, position+1)
}

func (s *Store) swap(i, j int) error {
	next := s.Tasks()
	next[i], next[j] = next[j], next[i]
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("task moved", "from", i, "to", j)
	return nil
}

// ToggleComplete flips the completion flag of the task at position.
func (s *Store) ToggleComplete(position int) error {
	if position < 0 || position >= len(s.tasks) {
		return ErrOutOfRange
	}
	next := s.Tasks()
	next[position].IsComplete = !next[position].IsComplete
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("task toggled", "position", position, "complete", next[position].IsComplete)
	return nil
}

// DeleteAll empties the sequence. Callers confirm with the user first.
func (s *Store) DeleteAll() error {
	if err := s.commit([]model.Task{}); err != nil {
		return err
	}
	s.logger.Debug("all tasks deleted")
	return nil
}

func (s *Store) commit(next []model.Task) error {
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.storage.Set(store.KeyTasks, b); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = next
	return nil
}
