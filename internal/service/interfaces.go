package service

import (
	"context"

	"github.com/MKhiriev/calmora/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the development server's account and session logic.
type AuthService interface {
	// Register creates an account for req.
	Register(ctx context.Context, req models.RegistrationRequest) error
	// Login verifies creds and opens a session, returning its id.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	// Logout closes the session. Unknown ids are not an error.
	Logout(ctx context.Context, sessionID string) error
	// SessionEmail resolves a session id to the account email.
	SessionEmail(ctx context.Context, sessionID string) (string, error)
}

// ChatService produces the responder's reply to a user message.
type ChatService interface {
	Reply(ctx context.Context, email, message string) (string, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
