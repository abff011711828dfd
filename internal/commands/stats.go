package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/cobra"

	"github.com/balkashynov/taskdeck/internal/chart"
	"github.com/balkashynov/taskdeck/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion stats",
	Args:  cobra.NoArgs,
	RunE:  withStore(runStats),
}

func runStats(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	summary := stats.Compute(a.store.Tasks(), time.Now())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Total:      %d\n", summary.Total)
	fmt.Fprintf(out, "Completed:  %d\n", summary.Completed)
	fmt.Fprintf(out, "Pending:    %d\n", summary.Pending)
	fmt.Fprintf(out, "Due today:  %d\n\n", summary.DueToday)

	bar := progress.New(progress.WithSolidFill(chart.ColorCompleted), progress.WithoutPercentage())
	bar.Width = 30
	fmt.Fprintf(out, "%s %d%%\n", bar.ViewAs(summary.Fraction()), summary.CompletionPercent)

	if noChart, _ := cmd.Flags().GetBool("no-chart"); noChart {
		return nil
	}

	donut := chart.NewAdapter(chart.NewDonutRenderer())
	defer donut.Close()
	if err := donut.Update(summary.Completed, summary.Pending); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", donut.View())
	return nil
}

func init() {
	statsCmd.Flags().Bool("no-chart", false, "Print the numbers only")
}
