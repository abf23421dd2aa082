package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calmora/internal/validators"
	"github.com/MKhiriev/calmora/models"
)

// AuthValidationService rejects malformed registration and login payloads
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegistrationRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during registration validation: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return "", fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) Logout(ctx context.Context, sessionID string) error {
	return v.inner.Logout(ctx, sessionID)
}

func (v *AuthValidationService) SessionEmail(ctx context.Context, sessionID string) (string, error) {
	return v.inner.SessionEmail(ctx, sessionID)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
