// Package stats derives the aggregate counters shown next to the task list.
// They are always computed over the full collection, never a filtered view.
package stats

import (
	"math"
	"time"

	"github.com/balkashynov/taskdeck/internal/models"
)

// Summary holds the aggregate counters
type Summary struct {
	Total             int
	Completed         int
	Pending           int
	DueToday          int
	CompletionPercent int // 0..100
}

// Compute counts tasks relative to now's local calendar day
func Compute(tasks []models.Task, now time.Time) Summary {
	var s Summary
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.DueOn(now) {
			s.DueToday++
		}
	}
	s.Pending = s.Total - s.Completed
	s.CompletionPercent = Percent(s.Completed, s.Total)
	return s
}

// Percent rounds part/total*100 half away from zero; 0 when total is 0
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Fraction is the fill proportion of a progress indicator
func (s Summary) Fraction() float64 {
	return float64(s.CompletionPercent) / 100
}

// ArcOffset is the undrawn length of a progress ring of the given radius
func ArcOffset(percent int, radius float64) float64 {
	circumference := 2 * math.Pi * radius
	return circumference * (1 - float64(percent)/100)
}
