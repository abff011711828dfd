package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/taskdeck/internal/models"
	"github.com/balkashynov/taskdeck/internal/storage"
)

// DefaultSlot is the storage slot holding the serialized collection
const DefaultSlot = "tasks"

// Store owns the task collection. Every mutation is written back to the slot
// before the call returns. Not safe for concurrent use.
type Store struct {
	slots storage.Slots
	slot  string
	log   *zap.SugaredLogger
	now   func() time.Time

	tasks   []models.Task
	version uint64
	readErr error // last Load could not read the slot
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for degraded loads and failed writes
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now, which drives id generation
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store bound to the named slot. Call Load to read it.
func New(slots storage.Slots, slot string, opts ...Option) *Store {
	if slot == "" {
		slot = DefaultSlot
	}
	s := &Store{
		slots: slots,
		slot:  slot,
		log:   zap.NewNop().Sugar(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the slot contents. A missing or malformed
// slot yields an empty collection and no error. A failed read also leaves the
// collection empty and is returned as a *PersistenceError.
func (s *Store) Load() error {
	s.tasks = nil
	s.version++
	s.readErr = nil

	raw, ok, err := s.slots.Get(s.slot)
	if err != nil {
		s.log.Warnw("reading task slot failed, starting empty", "slot", s.slot, "error", err)
		s.readErr = err
		return &PersistenceError{Op: "load", Err: err}
	}
	if !ok {
		return nil
	}

	tasks, err := decode(raw)
	if err != nil {
		s.log.Warnw("task slot is not valid JSON, starting empty", "slot", s.slot, "error", err)
		return nil
	}
	s.tasks = tasks
	s.log.Debugw("tasks loaded", "slot", s.slot, "count", len(tasks))
	return nil
}

// Save writes the whole collection to the slot. After a failed read it
// refuses, so the unread slot is never replaced by the partial collection.
func (s *Store) Save() error {
	if s.readErr != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("saved tasks were never read: %w", s.readErr)}
	}
	raw, err := encode(s.tasks)
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := s.slots.Set(s.slot, raw); err != nil {
		s.log.Errorw("writing task slot failed", "slot", s.slot, "error", err)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Add validates the input, appends a new task and persists the collection.
// If only the write fails, the task stays in memory and is returned with the error.
func (s *Store) Add(in models.TaskInput) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, &ValidationError{Field: "title", Msg: "Title is required!"}
	}

	task := models.Task{
		ID:          s.nextID(),
		Title:       title,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		DueDate:     strings.TrimSpace(in.DueDate),
		Priority:    in.Priority,
		Completed:   false,
	}
	s.tasks = append(s.tasks, task)
	s.version++

	return task, s.Save()
}

// ToggleCompleted flips the completed flag of the task with id
func (s *Store) ToggleCompleted(id int64) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.version++

	return s.tasks[i], s.Save()
}

// Remove deletes the task with id. Removing an unknown id is a no-op and
// reports false without touching storage.
func (s *Store) Remove(id int64) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.version++

	return true, s.Save()
}

// Tasks returns a copy of the collection in insertion order
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with id
func (s *Store) Get(id int64) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the collection size
func (s *Store) Len() int {
	return len(s.tasks)
}

// Version changes whenever the in-memory collection changes
func (s *Store) Version() uint64 {
	return s.version
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives the id from the clock in milliseconds, bumping past the
// current maximum so ids stay unique and increasing
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func encode(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
