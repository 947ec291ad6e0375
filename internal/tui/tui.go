package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/service"
	"github.com/MKhiriev/go-client-panel/models"
)

type TUI struct {
	services  *service.ClientServices
	notices   *NoticeQueue
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, notices *NoticeQueue, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, notices: notices, buildInfo: buildInfo, logger: logger}
}

// Run shows the dashboard until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_, err := tea.NewProgram(newModel(ctx, t.services, t.notices, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Str("func", "TUI.Run").Msg("dashboard closed by shutdown")
		return nil
	}
	return err
}
