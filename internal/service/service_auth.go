package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/internal/utils"
	"github.com/MKhiriev/calmora/models"
)

// authService keeps accounts with bcrypt password hashes and issues opaque
// UUID session ids.
type authService struct {
	accounts store.AccountRepository
	sessions store.SessionRepository
	ids      *utils.UUIDGenerator
	cost     int
	logger   *logger.Logger
}

func NewAuthService(storages *store.ServerStorages, logger *logger.Logger) AuthService {
	return &authService{
		accounts: storages.AccountRepository,
		sessions: storages.SessionRepository,
		ids:      utils.NewUUIDGenerator(),
		cost:     bcrypt.DefaultCost,
		logger:   logger,
	}
}

func (a *authService) Register(ctx context.Context, req models.RegistrationRequest) error {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.Password)), a.cost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = a.accounts.CreateAccount(ctx, models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		return ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Msg("account creation ended with error")
		return fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("account registered")
	return nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	log := logger.FromContext(ctx)
	email := strings.TrimSpace(creds.Email)

	account, err := a.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return "", ErrInvalidEmailOrPassword
	}
	if err != nil {
		return "", fmt.Errorf("error finding account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(strings.TrimSpace(creds.Password))); err != nil {
		log.Debug().Str("email", email).Msg("password mismatch")
		return "", ErrInvalidEmailOrPassword
	}

	sessionID := a.ids.Generate()
	if err = a.sessions.CreateSession(ctx, sessionID, account.Email); err != nil {
		return "", fmt.Errorf("error creating session: %w", err)
	}

	log.Info().Str("email", account.Email).Msg("session opened")
	return sessionID, nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := a.sessions.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (a *authService) SessionEmail(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrUnauthorized
	}

	email, err := a.sessions.FindSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("error finding session: %w", err)
	}

	return email, nil
}
