package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskdeck/internal/models"
	"github.com/balkashynov/taskdeck/internal/parser"
	"github.com/balkashynov/taskdeck/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Modes:
  Interactive: taskdeck add (no arguments opens the board with the form)
  Quick: taskdeck add "Task title" (with optional flags)
  Smart parsing: taskdeck add "Pay rent @home +high due:tomorrow"

Smart parsing syntax:
  @category   - Category
  +priority   - Priority (low/medium/high or any number)
  due:3days   - Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, X weeks)

Flags override anything parsed from the title.`,
	Args: cobra.ArbitraryArgs,
	RunE: withStore(runAdd),
}

func runAdd(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	if len(args) == 0 {
		return openBoard(cmd, a, true)
	}

	in, err := addInput(cmd, strings.Join(args, " "), time.Now())
	if err != nil {
		return err
	}

	task, err := a.store.Add(in)
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Msg)
	}
	if err != nil {
		return describeSaveError(err)
	}

	a.log.Infow("task added", "id", task.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "✅ New task \"%s\" added - ID: %d\n", task.Title, task.ID)
	return nil
}

// addInput merges the quick syntax in the title with the explicit flags
func addInput(cmd *cobra.Command, title string, now time.Time) (models.TaskInput, error) {
	parsed := parser.ParseTitle(title, now)
	if len(parsed.Errors) > 0 {
		return models.TaskInput{}, fmt.Errorf("could not parse task: %s", strings.Join(parsed.Errors, ", "))
	}

	in := models.TaskInput{
		Title:    parsed.Title,
		Category: parsed.Category,
		DueDate:  parsed.DueDate,
		Priority: parsed.Priority,
	}

	flags := cmd.Flags()
	if flags.Changed("category") {
		in.Category, _ = flags.GetString("category")
	}
	if flags.Changed("description") {
		in.Description, _ = flags.GetString("description")
	}
	if flags.Changed("due") {
		raw, _ := flags.GetString("due")
		due, err := parser.ParseDueDate(raw, now)
		if err != nil {
			return models.TaskInput{}, err
		}
		in.DueDate = due
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		p, err := parser.ParsePriority(raw)
		if err != nil {
			return models.TaskInput{}, err
		}
		in.Priority = p
	}
	return in, nil
}

func init() {
	addCmd.Flags().StringP("category", "c", "", "Category")
	addCmd.Flags().StringP("description", "d", "", "Longer description")
	addCmd.Flags().String("due", "", "Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, 3 days)")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low|medium|high or a number")
}
