package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive board and blocks until the user quits or ctx
// is cancelled. A cancelled context is a normal exit.
func Run(ctx context.Context, board Board, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(board, opts...)
	finalModel, err := p.Run()

	if m, ok := finalModel.(Board); ok && m.chart != nil {
		m.chart.Close()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
