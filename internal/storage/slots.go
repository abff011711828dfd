package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slots is a key/value store of named string slots
type Slots interface {
	// Get returns the slot value; ok is false when the slot was never written
	Get(name string) (value string, ok bool, err error)
	Set(name, value string) error
}

// Slot is one named value in the slots table
type Slot struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// SQLSlots keeps slots in a gorm-managed table
type SQLSlots struct {
	db *gorm.DB
}

// NewSQLSlots wraps an opened database
func NewSQLSlots(db *gorm.DB) *SQLSlots {
	return &SQLSlots{db: db}
}

func (s *SQLSlots) Get(name string) (string, bool, error) {
	var slot Slot
	err := s.db.Where("name = ?", name).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", name, err)
	}
	return slot.Value, true, nil
}

func (s *SQLSlots) Set(name, value string) error {
	slot := Slot{Name: name, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}
	return nil
}

// MemorySlots is an in-process Slots, used for tests and throwaway sessions
type MemorySlots struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: map[string]string{}}
}

func (m *MemorySlots) Get(name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[name]
	return v, ok, nil
}

func (m *MemorySlots) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[name] = value
	return nil
}
