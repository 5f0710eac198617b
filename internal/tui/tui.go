package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akulikov/scoresync/internal/logger"
	"github.com/akulikov/scoresync/internal/service"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the interactive journal until the user quits.
func (t *TUI) Run(ctx context.Context, userID int64) error {
	model := newAppModel(ctx, t.services, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && result.err != ErrUserQuit {
		return result.err
	}
	return nil
}
