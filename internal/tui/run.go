package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/fleetboard/internal/app"
	"github.com/thenoetrevino/fleetboard/internal/board"
)

// Run starts the interactive board with the initial filter and blocks until
// the user quits. Pending layout writes are flushed before it returns.
func Run(ctx context.Context, a *app.App, initial board.Criteria) error {
	persister := a.NewPersister()
	defer func() {
		if err := persister.Close(); err != nil {
			slog.Error("failed to flush board layout", "error", err)
		}
	}()

	m := New(ctx, a.WorkOrderService, persister, a.Config(), slog.Default())
	m = m.setCriteria(initial)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running board: %w", err)
	}
	return nil
}
