package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/balkashynov/taskdeck/internal/models"
)

// epoch stands in for a missing due date so undated tasks sort first
var epoch = time.Unix(0, 0)

// Apply filters, searches, then sorts tasks. The input slice is never reordered.
func Apply(tasks []models.Task, opts Options, now time.Time) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	term := strings.ToLower(opts.Search)

	for _, t := range tasks {
		if !matchesFilter(t, opts.Filter, now) {
			continue
		}
		if term != "" && !matchesSearch(t, term) {
			continue
		}
		out = append(out, t)
	}

	sortTasks(out, opts.Sort)
	return out
}

func matchesFilter(t models.Task, f Filter, now time.Time) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterToday:
		return t.DueOn(now)
	default:
		return true
	}
}

// matchesSearch expects a lowercased term
func matchesSearch(t models.Task, term string) bool {
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

func sortTasks(tasks []models.Task, by Sort) {
	switch by {
	case SortDue:
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return dueKey(a).Compare(dueKey(b))
		})
	case SortPriority:
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
	case SortCategory:
		// A Collator is not safe for concurrent use
		c := collate.New(language.Und)
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return c.CompareString(a.Category, b.Category)
		})
	default:
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			switch {
			case a.ID > b.ID:
				return -1
			case a.ID < b.ID:
				return 1
			}
			return 0
		})
	}
}

func dueKey(t models.Task) time.Time {
	if due, ok := t.Due(); ok {
		return due
	}
	return epoch
}
