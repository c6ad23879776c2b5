package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/preview"
	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the house-builder page in the terminal.
type TUI struct {
	services  *service.ClientServices
	loader    *preview.Loader
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, loader *preview.Loader, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, loader: loader, buildInfo: buildInfo, logger: log}
}

// Run blocks until the visitor quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.loader, t.buildInfo, t.logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
