// Package store owns the authoritative todo list and keeps it in a slot.
//
// Every change rewrites the whole list under Key. Blank text and unknown IDs
// are silent no-ops. A failed write never undoes the change in memory: the
// session stays consistent and the caller gets a *PersistError to surface as
// a warning.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/daily/internal/model"
	"github.com/idilsaglam/daily/internal/slot"
)

// Key is the slot key the list is stored under.
const Key = "todos"

const defaultTimeout = 2 * time.Second

// PersistError wraps a failed write of the list to the slot.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %q: %s", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

type Options struct {
	Logger *log.Logger
	// Timeout bounds each slot call. Zero means two seconds.
	Timeout time.Duration
	// Now drives ID generation. Nil means time.Now.
	Now func() time.Time
}

// Store is the todo list state container. It is not safe for concurrent use;
// the UI drives it from a single goroutine.
type Store struct {
	slot    slot.Slot
	log     *log.Logger
	timeout time.Duration
	ids     *model.IDSource

	todos      []model.Todo
	lastErr    error
	restoreErr error
}

// Open restores the list saved in s. Missing, unreadable or malformed data
// starts an empty list; the reason is kept in RestoreErr.
func Open(s slot.Slot, opts Options) *Store {
	st := &Store{
		slot:    s,
		log:     opts.Logger,
		timeout: opts.Timeout,
		ids:     model.NewIDSource(opts.Now),
		todos:   []model.Todo{},
	}
	if st.log == nil {
		st.log = log.New(io.Discard)
	}
	if st.timeout <= 0 {
		st.timeout = defaultTimeout
	}
	st.restore()
	return st
}

func (s *Store) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	b, err := s.slot.Get(ctx, Key)
	if errors.Is(err, slot.ErrNotFound) {
		s.log.Debug("no saved todos", "key", Key)
		return
	}
	if err != nil {
		s.restoreErr = fmt.Errorf("read %q: %w", Key, err)
		s.log.Warn("restore failed, starting empty", "key", Key, "err", err)
		return
	}

	todos, err := Decode(b)
	if err != nil {
		s.restoreErr = err
		s.log.Warn("saved todos unreadable, starting empty", "key", Key, "err", err)
		return
	}
	s.todos = s.uniqueIDs(todos)
	s.log.Debug("restored todos", "key", Key, "count", len(s.todos))
}

// uniqueIDs gives every repeated ID after its first occurrence a fresh one.
func (s *Store) uniqueIDs(todos []model.Todo) []model.Todo {
	for _, t := range todos {
		s.ids.Observe(t.ID)
	}
	seen := make(map[int64]struct{}, len(todos))
	for i := range todos {
		if _, dup := seen[todos[i].ID]; dup {
			old := todos[i].ID
			todos[i].ID = s.ids.Next()
			s.log.Warn("duplicate todo id reassigned", "id", old, "new", todos[i].ID)
		}
		seen[todos[i].ID] = struct{}{}
	}
	return todos
}

// RestoreErr reports why saved data was discarded at Open, if it was.
func (s *Store) RestoreErr() error { return s.restoreErr }

// Err reports the last failed write, or nil once a write succeeds again.
func (s *Store) Err() error { return s.lastErr }

// Todos returns a copy of the list, most recent first.
func (s *Store) Todos() []model.Todo {
	return slices.Clone(s.todos)
}

// Len is the number of todos.
func (s *Store) Len() int { return len(s.todos) }

// Get looks a todo up by ID.
func (s *Store) Get(id int64) (model.Todo, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return s.todos[i], true
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}

// Add prepends a new active todo. Blank text is ignored.
// The text is stored as given, surrounding spaces included.
func (s *Store) Add(text string) (bool, error) {
	if model.Blank(text) {
		return false, nil
	}
	t := model.Todo{ID: s.ids.Next(), Text: text}
	s.todos = slices.Insert(s.todos, 0, t)
	return true, s.persist()
}

// Delete removes the todo with id.
func (s *Store) Delete(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	return true, s.persist()
}

// Toggle flips the completion flag of the todo with id.
func (s *Store) Toggle(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.todos[i].Completed = !s.todos[i].Completed
	return true, s.persist()
}

// Edit replaces the text of the todo with id. Blank text leaves it unchanged.
func (s *Store) Edit(id int64, text string) (bool, error) {
	if model.Blank(text) {
		return false, nil
	}
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.todos[i].Text = text
	return true, s.persist()
}

// ClearCompleted removes every completed todo.
func (s *Store) ClearCompleted() (int, error) {
	before := len(s.todos)
	s.todos = slices.DeleteFunc(s.todos, func(t model.Todo) bool { return t.Completed })
	removed := before - len(s.todos)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

func (s *Store) persist() error {
	b, err := Encode(s.todos)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err = s.slot.Set(ctx, Key, b)
		cancel()
	}
	if err != nil {
		perr := &PersistError{Key: Key, Err: err}
		s.lastErr = perr
		s.log.Warn("persist failed, change kept in memory", "key", Key, "err", err)
		return perr
	}
	s.lastErr = nil
	s.log.Debug("persisted todos", "key", Key, "count", len(s.todos))
	return nil
}
