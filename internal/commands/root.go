package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/balkashynov/taskdeck/internal/config"
	"github.com/balkashynov/taskdeck/internal/logging"
	"github.com/balkashynov/taskdeck/internal/storage"
	"github.com/balkashynov/taskdeck/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	configPath string
	dbPath     string
	slotName   string
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A task board for the terminal",
	Long: `taskdeck keeps a single list of tasks with categories, due dates and priorities.
Run it without arguments to open the interactive board, or use the subcommands
to add, list and update tasks from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
	RunE:          withStore(runBoard),
}

// app is everything a command needs to work on the task list
type app struct {
	cfg     config.Config
	log     *zap.SugaredLogger
	db      *gorm.DB
	store   *store.Store
	loadErr error // saved tasks could not be read
}

// openApp loads config, starts logging, opens the database and loads the tasks
func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if slotName != "" {
		cfg.Storage.Slot = slotName
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Errorw("opening database failed", "path", cfg.Storage.Path, "error", err)
		return nil, err
	}

	s := store.New(storage.NewSQLSlots(db), cfg.Storage.Slot, store.WithLogger(log))
	a := &app{cfg: cfg, log: log, db: db, store: s}
	a.loadErr = s.Load()
	log.Debugw("taskdeck started", "db", cfg.Storage.Path, "slot", cfg.Storage.Slot, "tasks", s.Len())
	return a, nil
}

func (a *app) close() {
	if err := storage.Close(a.db); err != nil {
		a.log.Warnw("closing database failed", "error", err)
	}
	_ = a.log.Sync()
}

// withStore wraps a command function to open the task store first
func withStore(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, args, a)
	}
}

// requireLoaded stops commands that would overwrite tasks they could not read
func requireLoaded(a *app) error {
	if a.loadErr != nil {
		return fmt.Errorf("could not read saved tasks: %w", a.loadErr)
	}
	return nil
}

// describeSaveError turns a failed write into a message for the terminal
func describeSaveError(err error) error {
	var perr *store.PersistenceError
	if errors.As(err, &perr) {
		return fmt.Errorf("could not save tasks: %w", perr.Err)
	}
	return err
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command. Cancelling ctx closes the board.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.taskdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file")
	rootCmd.PersistentFlags().StringVar(&slotName, "slot", "", "storage slot holding the task list")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
