package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/taskdeck/internal/models"
)

var now = time.Date(2026, 10, 15, 14, 0, 0, 0, time.Local)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2026-10-20", "2026-10-20"},
		{"2026-1-5", "2026-01-05"},
		{"20/10/2026", "2026-10-20"},
		{"today", "2026-10-15"},
		{"Tomorrow", "2026-10-16"},
		{"3 days", "2026-10-18"},
		{"3days", "2026-10-18"},
		{"1 week", "2026-10-22"},
		{"2w", "2026-10-29"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDueDate(tt.in, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, in := range []string{"31/02/2026", "2026-13-01", "next friday", "400 days", "99 weeks"} {
		_, err := ParseDueDate(in, now)
		assert.Error(t, err, in)
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]int{"": 0, "low": 1, "MED": 2, "medium": 2, "high": 3, "5": 5, " 10 ": 10}
	for in, want := range cases {
		got, err := ParsePriority(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePriority("urgent")
	assert.Error(t, err)
	_, err = ParsePriority("-1")
	assert.Error(t, err)
}

func TestParseTitle(t *testing.T) {
	p := ParseTitle("Buy milk @errands +high due:tomorrow", now)
	assert.Empty(t, p.Errors)
	assert.Equal(t, "Buy milk", p.Title)
	assert.Equal(t, "errands", p.Category)
	assert.Equal(t, 3, p.Priority)
	assert.Equal(t, "2026-10-16", p.DueDate)
}

func TestParseTitle_PlainAndErrors(t *testing.T) {
	p := ParseTitle("email bob@example.com about C++", now)
	assert.Empty(t, p.Errors)
	assert.Equal(t, "email bob@example.com about C++", p.Title)
	assert.Empty(t, p.Category)

	p = ParseTitle("Water plants +urgent due:someday", now)
	assert.Len(t, p.Errors, 2)
	assert.Equal(t, "Water plants", p.Title)
}

func TestFormatDateAndLabel(t *testing.T) {
	assert.Equal(t, "", FormatDate(models.Task{}))
	assert.Equal(t, "Oct 20, 2026", FormatDate(models.Task{DueDate: "2026-10-20"}))
	assert.Equal(t, "junk", FormatDate(models.Task{DueDate: "junk"}))

	assert.Equal(t, "-", DueLabel(models.Task{}, now))
	assert.Equal(t, "OVERDUE", DueLabel(models.Task{DueDate: "2026-10-14"}, now))
	assert.Equal(t, "TODAY", DueLabel(models.Task{DueDate: "2026-10-15"}, now))
	assert.Equal(t, "TOMORROW", DueLabel(models.Task{DueDate: "2026-10-16"}, now))
	assert.Equal(t, "5d", DueLabel(models.Task{DueDate: "2026-10-20"}, now))
	assert.Equal(t, "01 Dec", DueLabel(models.Task{DueDate: "2026-12-01"}, now))
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "", PriorityLabel(0))
	assert.Equal(t, "high", PriorityLabel(3))
	assert.Equal(t, "P7", PriorityLabel(7))
}
