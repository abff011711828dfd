package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/taskdeck/internal/chart"
	"github.com/balkashynov/taskdeck/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Long: `Open the full-screen board: the task list with filters, search and sort,
the new-task form, and live progress stats.`,
	Args: cobra.NoArgs,
	RunE: withStore(runBoard),
}

func runBoard(cmd *cobra.Command, args []string, a *app) error {
	return openBoard(cmd, a, false)
}

// openBoard runs the board until the user quits. Unreadable saved tasks do
// not stop the session; the board starts empty.
func openBoard(cmd *cobra.Command, a *app, openForm bool) error {
	if a.loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  Could not read saved tasks, starting empty: %v\n", a.loadErr)
	}

	board := tui.NewBoard(a.store, chart.NewAdapter(chart.NewDonutRenderer()), tui.Options{
		Theme:         tui.ThemeName(a.cfg.UI.Theme),
		ToastDuration: a.cfg.UI.ToastDuration,
		Logger:        a.log,
		OpenForm:      openForm,
	})
	if err := tui.Run(cmd.Context(), board); err != nil {
		a.log.Errorw("board exited with error", "error", err)
		return fmt.Errorf("failed to run board: %w", err)
	}
	return nil
}
