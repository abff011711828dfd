package query

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/taskdeck/internal/models"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

func titles(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func sample() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Buy milk", Category: "errands", Priority: 1, DueDate: "2026-10-15"},
		{ID: 2, Title: "File taxes", Category: "Finance", Priority: 5, Completed: true, DueDate: "2026-11-01"},
		{ID: 3, Title: "Call mom", Category: "family", Priority: 3},
		{ID: 4, Title: "Fix bike", Category: "errands", Priority: 3, Completed: true, DueDate: "2026-10-15"},
	}
}

func TestApply_Filters(t *testing.T) {
	tasks := sample()

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"Fix bike", "Call mom", "File taxes", "Buy milk"}},
		{FilterPending, []string{"Call mom", "Buy milk"}},
		{FilterCompleted, []string{"Fix bike", "File taxes"}},
		{FilterToday, []string{"Fix bike", "Buy milk"}},
		{"", []string{"Fix bike", "Call mom", "File taxes", "Buy milk"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := Apply(tasks, Options{Filter: tt.filter}, now)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestApply_TodayUsesCalendarDay(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "late tonight", DueDate: "2026-10-15"},
		{ID: 2, Title: "tomorrow", DueDate: "2026-10-16"},
		{ID: 3, Title: "yesterday", DueDate: "2026-10-14"},
		{ID: 4, Title: "undated"},
	}
	almostMidnight := time.Date(2026, 10, 15, 23, 59, 0, 0, time.Local)

	got := Apply(tasks, Options{Filter: FilterToday}, almostMidnight)
	assert.Equal(t, []string{"late tonight"}, titles(got))
}

func TestApply_SearchTitleOrCategory(t *testing.T) {
	tasks := sample()

	got := Apply(tasks, Options{Search: "ERRAND"}, now)
	assert.Equal(t, []string{"Fix bike", "Buy milk"}, titles(got))

	got = Apply(tasks, Options{Search: "mom"}, now)
	assert.Equal(t, []string{"Call mom"}, titles(got))

	got = Apply(tasks, Options{Search: ""}, now)
	assert.Len(t, got, len(tasks))
}

func TestApply_SearchKeepsWhitespace(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "laundry"},
	}

	got := Apply(tasks, Options{Search: "y "}, now)
	assert.Empty(t, got)

	got = Apply(tasks, Options{Search: " "}, now)
	assert.Equal(t, []string{"Buy milk"}, titles(got))
}

func TestApply_CompletedThenSearch(t *testing.T) {
	tasks := sample()
	term := "i"

	got := Apply(tasks, Options{Filter: FilterCompleted, Search: term}, now)
	require.NotEmpty(t, got)
	for _, task := range got {
		assert.True(t, task.Completed)
		assert.True(t,
			strings.Contains(strings.ToLower(task.Title), term) ||
				strings.Contains(strings.ToLower(task.Category), term))
	}
}

func TestApply_SortDueUndatedFirstAndStable(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "later", DueDate: "2026-12-01"},
		{ID: 2, Title: "undated-a"},
		{ID: 3, Title: "soon", DueDate: "2026-10-20"},
		{ID: 4, Title: "undated-b"},
		{ID: 5, Title: "soon-too", DueDate: "2026-10-20"},
	}

	got := Apply(tasks, Options{Sort: SortDue}, now)
	assert.Equal(t, []string{"undated-a", "undated-b", "soon", "soon-too", "later"}, titles(got))
}

func TestApply_SortPriorityScenario(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "A", Priority: 1},
		{ID: 2, Title: "B", Priority: 5, Completed: true},
	}

	got := Apply(tasks, Options{Sort: SortPriority}, now)
	assert.Equal(t, []string{"B", "A"}, titles(got))
}

func TestApply_SortPriorityStable(t *testing.T) {
	got := Apply(sample(), Options{Sort: SortPriority}, now)
	assert.Equal(t, []string{"File taxes", "Call mom", "Fix bike", "Buy milk"}, titles(got))
}

func TestApply_SortPriorityExtremes(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "low", Priority: -2},
		{ID: 2, Title: "high", Priority: math.MaxInt},
		{ID: 3, Title: "lowest", Priority: math.MinInt},
	}

	got := Apply(tasks, Options{Sort: SortPriority}, now)
	assert.Equal(t, []string{"high", "low", "lowest"}, titles(got))
}

func TestApply_SortCategoryLocaleAware(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "1", Category: "zeta"},
		{ID: 2, Title: "2", Category: "Éclair"},
		{ID: 3, Title: "3", Category: "apple"},
		{ID: 4, Title: "4", Category: "Banana"},
	}

	got := Apply(tasks, Options{Sort: SortCategory}, now)
	assert.Equal(t, []string{"3", "4", "2", "1"}, titles(got))
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	tasks := sample()
	before := append([]models.Task(nil), tasks...)

	_ = Apply(tasks, Options{Sort: SortPriority}, now)
	assert.Equal(t, before, tasks)
}

func TestParseFilterAndSort(t *testing.T) {
	f, err := ParseFilter(" Pending ")
	assert.NoError(t, err)
	assert.Equal(t, FilterPending, f)

	f, err = ParseFilter("")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("overdue")
	assert.Error(t, err)

	s, err := ParseSort("DUE")
	assert.NoError(t, err)
	assert.Equal(t, SortDue, s)

	_, err = ParseSort("alpha")
	assert.Error(t, err)
}

func TestNextCycles(t *testing.T) {
	assert.Equal(t, FilterPending, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterToday.Next())
	assert.Equal(t, SortDue, SortNewest.Next())
	assert.Equal(t, SortNewest, SortCategory.Next())
}
