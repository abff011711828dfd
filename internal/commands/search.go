package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tasks by title or category",
	Long: `Search tasks with a case-insensitive substring match on the title or the
category. Accepts the same --filter and --sort flags as ls.`,
	Args: cobra.MinimumNArgs(1),
	RunE: withStore(runSearch),
}

func runSearch(cmd *cobra.Command, args []string, a *app) error {
	if err := requireLoaded(a); err != nil {
		return err
	}
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}
	opts.Search = strings.Join(args, " ")

	asJSON, _ := cmd.Flags().GetBool("json")
	return printTasks(cmd.OutOrStdout(), a.store.Tasks(), opts, asJSON, time.Now())
}

func init() {
	searchCmd.Flags().StringP("filter", "f", "all", "Filter: all|pending|completed|today")
	searchCmd.Flags().StringP("sort", "o", "newest", "Sort: newest|due|priority|category")
	searchCmd.Flags().Bool("json", false, "JSON output")
}
