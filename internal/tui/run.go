package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pantry-genius/internal/controller"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, session *controller.Session, opts ...Option) error {
	if session == nil {
		return errors.New("session is required")
	}

	p := tea.NewProgram(
		New(ctx, session, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
