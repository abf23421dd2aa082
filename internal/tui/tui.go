package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/models"
)

type TUI struct {
	ctrl          *controller.SessionController
	buildInfo     models.AppBuildInfo
	markdownStyle string
	logger        *logger.Logger
}

func New(ctrl *controller.SessionController, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		ctrl:          ctrl,
		buildInfo:     buildInfo,
		markdownStyle: DefaultMarkdownStyle,
		logger:        log,
	}
}

// Run shows the current view and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.ctrl, t.buildInfo, t.markdownStyle)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if _, ok := finalModel.(RootModel); !ok {
		return ErrUnexpectedModel
	}

	t.logger.Info().Str("view", t.ctrl.View().String()).Msg("tui closed")
	return nil
}
