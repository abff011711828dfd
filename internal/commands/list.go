package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskdeck/internal/models"
	"github.com/balkashynov/taskdeck/internal/parser"
	"github.com/balkashynov/taskdeck/internal/query"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with the same filter, search and sort options as the board",
	Args:    cobra.NoArgs,
	RunE:    withStore(runList),
}

func runList(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}
	search, _ := cmd.Flags().GetString("search")
	opts.Search = search

	asJSON, _ := cmd.Flags().GetBool("json")
	return printTasks(cmd.OutOrStdout(), a.store.Tasks(), opts, asJSON, time.Now())
}

// listOptions reads --filter and --sort
func listOptions(cmd *cobra.Command) (query.Options, error) {
	rawFilter, _ := cmd.Flags().GetString("filter")
	filter, err := query.ParseFilter(rawFilter)
	if err != nil {
		return query.Options{}, err
	}
	rawSort, _ := cmd.Flags().GetString("sort")
	sort, err := query.ParseSort(rawSort)
	if err != nil {
		return query.Options{}, err
	}
	return query.Options{Filter: filter, Sort: sort}, nil
}

// printTasks runs the query and writes a table or a JSON array
func printTasks(w io.Writer, tasks []models.Task, opts query.Options, asJSON bool, now time.Time) error {
	visible := query.Apply(tasks, opts, now)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	if len(visible) == 0 {
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No tasks found. Use 'taskdeck add \"task title\"' to create your first task.")
		} else {
			fmt.Fprintln(w, "No tasks match.")
		}
		return nil
	}

	// Print table header
	fmt.Fprintf(w, "%-14s %-7s %-40s %-15s %-8s %s\n", "ID", "STATUS", "TITLE", "CATEGORY", "PRIORITY", "DUE")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, task := range visible {
		status := "todo"
		if task.Completed {
			status = "done"
		}

		due := ""
		if task.DueDate != "" {
			due = parser.FormatDate(task)
			if label := parser.DueLabel(task, now); label == "OVERDUE" || label == "TODAY" {
				due += " (" + label + ")"
			}
		}

		fmt.Fprintf(w, "%-14d %-7s %-40s %-15s %-8s %s\n",
			task.ID,
			status,
			truncate(task.Title, 38),
			truncate(task.Category, 13),
			parser.PriorityLabel(task.Priority),
			due)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	listCmd.Flags().StringP("filter", "f", "all", "Filter: all|pending|completed|today")
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive match on title or category")
	listCmd.Flags().StringP("sort", "o", "newest", "Sort: newest|due|priority|category")
	listCmd.Flags().Bool("json", false, "JSON output")
}
