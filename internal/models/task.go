package models

import (
	"time"
)

// DateLayout is the calendar-date form used for stored due dates
const DateLayout = "2006-01-02"

// Task represents a todo item
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`  // "" or YYYY-MM-DD
	Priority    int    `json:"priority"` // higher = more urgent
	Completed   bool   `json:"completed"`
}

// TaskInput holds the data needed to create a new task
type TaskInput struct {
	Title       string
	Category    string
	Description string
	DueDate     string
	Priority    int
}

// Due returns the due date as local midnight of its calendar day.
// ok is false when the task has no due date or the stored value is unreadable.
func (t Task) Due() (due time.Time, ok bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	if d, err := time.ParseInLocation(DateLayout, t.DueDate, time.Local); err == nil {
		return d, true
	}
	// Older data may carry a full timestamp
	if ts, err := time.Parse(time.RFC3339, t.DueDate); err == nil {
		ts = ts.In(time.Local)
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// DueOn reports whether the task is due on the same local calendar day as day
func (t Task) DueOn(day time.Time) bool {
	due, ok := t.Due()
	if !ok {
		return false
	}
	day = day.In(time.Local)
	return due.Year() == day.Year() && due.Month() == day.Month() && due.Day() == day.Day()
}
