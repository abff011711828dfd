package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for taskdeck",
	Long:  `Display detailed help for all taskdeck commands, flags and board keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	},
}

const helpText = `
▀█▀ ▄▀█ █▀ █▄▀ █▀▄ █▀▀ █▀▀ █▄▀
 █  █▀█ ▄█ █ █ █▄▀ ██▄ █▄▄ █ █

taskdeck - task board for the terminal

COMMANDS:

  (no command), board     Open the interactive board

  add <title>             Create a new task with smart parsing
    -c, --category        Category
    -d, --description     Longer description
    --due                 Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, 3 days, 2w)
    -p, --priority        Priority: low|medium|high or any number

    Smart syntax:
      @category     Set category
      +priority     Set priority (low/medium/high or a number)
      due:3days     Set due date

    Example:
      taskdeck add "Pay rent @home +high due:tomorrow"

    Without a title the board opens with the new-task form.

  ls                      List tasks
    -f, --filter          all|pending|completed|today
    -s, --search          Match title or category
    -o, --sort            newest|due|priority|category
    --json                JSON output

  search <query>          Same as ls --search
  done <id>               Toggle a task between done and pending
  rm <id>                 Delete a task (asks first)
    -y, --yes             Skip the confirmation
  stats                   Totals, completion percentage and chart
  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  --config                Config file (default ~/.taskdeck/config.yaml)
  --db                    SQLite database file
  --slot                  Storage slot holding the task list

BOARD KEYS:

  ↑/↓ or k/j    Move
  space, x      Done/undo selected task
  d             Delete selected task
  n, a          New task
  /             Search (esc clears)
  f, tab, 1-4   Filter
  s             Cycle sort
  t             Toggle light/dark theme
  q, ctrl+c     Quit

`
