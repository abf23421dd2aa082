package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) SessionStatus(ctx context.Context) (models.SessionStatus, error) {
	status, err := a.adapter.SessionStatus(ctx)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("session status: %w", err)
	}

	a.logger.Debug().Bool("logged_in", status.LoggedIn).Msg("session status received")
	return status, nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) error {
	if err := a.adapter.Login(ctx, creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("email", creds.Email).Msg("logged in")
	return nil
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegistrationRequest) error {
	if err := a.adapter.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("email", req.Email).Msg("registered")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) (string, error) {
	message, err := a.adapter.Logout(ctx)
	if err != nil {
		return "", fmt.Errorf("logout: %w", err)
	}

	a.logger.Info().Msg("logged out")
	return message, nil
}
