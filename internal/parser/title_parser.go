package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedTask represents a task parsed from quick-add syntax
type ParsedTask struct {
	Title    string
	Category string
	Priority int
	DueDate  string
	Errors   []string
}

var (
	categoryRegex = regexp.MustCompile(`(?:^|\s)@([\p{L}\p{N}_-]+)`)
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`(?:^|\s)due:([^\s]+)`)
)

// ParseTitle extracts metadata from a task title
// Syntax: "Task title @category +priority due:tomorrow"
func ParseTitle(input string, now time.Time) ParsedTask {
	result := ParsedTask{
		Errors: []string{},
	}

	// Extract category (@errands)
	if m := categoryRegex.FindStringSubmatch(input); m != nil {
		result.Category = m[1]
		input = categoryRegex.ReplaceAllString(input, " ")
	}

	// Extract priority (+high, +5, ...)
	if m := priorityRegex.FindStringSubmatch(input); m != nil {
		p, err := ParsePriority(m[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Priority = p
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Extract due date (due:tomorrow, due:2026-10-15, due:3days)
	if m := dueRegex.FindStringSubmatch(input); m != nil {
		due, err := ParseDueDate(m[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}

// ParsePriority converts a priority to its numeric rank. Accepts any
// non-negative integer or low/medium/high (1/2/3). Empty means 0.
func ParsePriority(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return 0, nil
	case "low":
		return 1, nil
	case "medium", "med":
		return 2, nil
	case "high":
		return 3, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid priority '%s'. Use a number or low, medium, high", s)
	}
	return n, nil
}

// PriorityLabel renders a rank for display
func PriorityLabel(p int) string {
	switch {
	case p <= 0:
		return ""
	case p == 1:
		return "low"
	case p == 2:
		return "medium"
	case p == 3:
		return "high"
	default:
		return fmt.Sprintf("P%d", p)
	}
}
