package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calmora/internal/controller"
	"github.com/MKhiriev/calmora/internal/logger"
)

type App struct {
	ctx    context.Context
	ctrl   *controller.SessionController
	ui     UI
	logger *logger.Logger
}

func NewApp(ctx context.Context, ctrl *controller.SessionController, ui UI, log *logger.Logger) (*App, error) {
	if ctrl == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{ctx: ctx, ctrl: ctrl, ui: ui, logger: log}, nil
}

// Run applies the bootstrap probe before the first render, so a live session
// opens straight into the chat view, and then runs the UI.
func (a *App) Run() error {
	a.ctrl.Update(a.ctrl.Bootstrap()())
	a.logger.Info().Str("view", a.ctrl.View().String()).Msg("initial view resolved")

	if err := a.ui.Run(a.ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
