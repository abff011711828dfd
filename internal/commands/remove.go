package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long:    "Delete a task permanently. Asks for confirmation unless --yes is given.",
	Args:    cobra.ExactArgs(1),
	RunE:    withStore(runRemove),
}

func runRemove(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("task %d not found", id)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm(cmd, fmt.Sprintf("Are you sure you want to delete this task? \"%s\"", task.Title)) {
		fmt.Fprintln(cmd.OutOrStdout(), "❌ Deletion cancelled.")
		return nil
	}

	if _, err := a.store.Remove(id); err != nil {
		return describeSaveError(err)
	}

	a.log.Infow("task deleted", "id", id)
	fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted task #%d: %s\n", task.ID, task.Title)
	return nil
}

// confirm asks a y/N question on the command's input. Anything but y or yes is No.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
