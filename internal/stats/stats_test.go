package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/taskdeck/internal/models"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func TestCompute_Scenario(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "A", Priority: 1},
		{ID: 2, Title: "B", Priority: 5, Completed: true},
	}

	s := Compute(tasks, now)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 50, s.CompletionPercent)
	assert.InDelta(t, 0.5, s.Fraction(), 1e-9)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, now)
	assert.Equal(t, Summary{}, s)
}

func TestCompute_DueToday(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "a", DueDate: "2026-10-15"},
		{ID: 2, Title: "b", DueDate: "2026-10-15", Completed: true},
		{ID: 3, Title: "c", DueDate: "2026-10-16"},
		{ID: 4, Title: "d"},
		{ID: 5, Title: "e", DueDate: "garbage"},
	}

	s := Compute(tasks, now)
	assert.Equal(t, 2, s.DueToday)
	assert.Equal(t, 5, s.Total)
}

func TestPercent_Rounding(t *testing.T) {
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 13, Percent(1, 8)) // 12.5 rounds up
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 100, Percent(4, 4))
}

func TestPercent_AlwaysInRange(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for part := 0; part <= total; part++ {
			p := Percent(part, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestArcOffset(t *testing.T) {
	full := 2 * math.Pi * 52
	assert.InDelta(t, full, ArcOffset(0, 52), 1e-9)
	assert.InDelta(t, 0, ArcOffset(100, 52), 1e-9)
	assert.InDelta(t, full/2, ArcOffset(50, 52), 1e-9)
}
