package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskdeck/internal/store"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Toggle a task between done and pending",
	Args:  cobra.ExactArgs(1),
	RunE:  withStore(runDone),
}

func runDone(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := a.store.ToggleCompleted(id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("task %d not found", id)
	}
	if err != nil {
		return describeSaveError(err)
	}

	if task.Completed {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Marked task #%d as done: %s\n", task.ID, task.Title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "↩️  Marked task #%d back to pending: %s\n", task.ID, task.Title)
	}
	return nil
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID '%s'", s)
	}
	return id, nil
}
