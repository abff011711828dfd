package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/taskdeck/internal/models"
)

var (
	isoDateRegex  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyDateRegex  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks)$`)
)

// ParseDueDate parses a due date relative to now and returns it in the stored
// YYYY-MM-DD form. Empty input means no due date.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-10-15")
// - dd/mm/yyyy (e.g., "15/10/2026")
// - today, tomorrow
// - X days, X weeks (e.g., "3 days", "2w")
func ParseDueDate(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return today.Format(models.DateLayout), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(models.DateLayout), nil
	}

	if m := isoDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[1], m[2], m[3])
	}
	if m := dmyDateRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[3], m[2], m[1])
	}
	if m := relativeRegex.FindStringSubmatch(input); m != nil {
		return parseRelative(m[1], m[2], today)
	}

	return "", fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, or X weeks")
}

func buildDate(y, m, d string) (string, error) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Reject dates that normalized into the next month (31/02 etc.)
	if date.Day() != day || date.Month() != time.Month(month) {
		return "", fmt.Errorf("invalid date")
	}
	return date.Format(models.DateLayout), nil
}

func parseRelative(amount, unit string, today time.Time) (string, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}

	switch unit {
	case "d", "day", "days":
		if n > 365 {
			return "", fmt.Errorf("days must be between 0 and 365")
		}
		return today.AddDate(0, 0, n).Format(models.DateLayout), nil
	default:
		if n > 52 {
			return "", fmt.Errorf("weeks must be between 0 and 52")
		}
		return today.AddDate(0, 0, n*7).Format(models.DateLayout), nil
	}
}

// FormatDate renders a stored due date for display. Unreadable values are
// shown as stored.
func FormatDate(t models.Task) string {
	if t.DueDate == "" {
		return ""
	}
	due, ok := t.Due()
	if !ok {
		return t.DueDate
	}
	return due.Format("Jan 2, 2006")
}

// DueLabel is a short relative label for list columns
func DueLabel(t models.Task, now time.Time) string {
	due, ok := t.Due()
	if !ok {
		return "-"
	}

	now = now.In(time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	// Round to absorb DST-shortened days
	days := int(math.Round(due.Sub(today).Hours() / 24))

	switch {
	case days < 0:
		return "OVERDUE"
	case days == 0:
		return "TODAY"
	case days == 1:
		return "TOMORROW"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	default:
		return due.Format("02 Jan")
	}
}
