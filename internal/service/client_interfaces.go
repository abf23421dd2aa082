package service

import (
	"context"

	"github.com/MKhiriev/calmora/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for establishing and
// ending a session with the Calmora service. Errors keep the adapter's two
// tiers intact: a service-reported failure unwraps to *adapter.ResponseError,
// a transport failure to adapter.ErrTransport.
type ClientAuthService interface {
	// SessionStatus asks the service whether the ambient session is live.
	SessionStatus(ctx context.Context) (models.SessionStatus, error)

	// Login submits credentials as entered; nothing is validated locally.
	Login(ctx context.Context, creds models.Credentials) error

	// Register submits the registration form as entered.
	Register(ctx context.Context, req models.RegistrationRequest) error

	// Logout ends the session and returns the service's confirmation text.
	Logout(ctx context.Context) (string, error)
}

// ClientChatService defines the client-side contract for the conversation.
type ClientChatService interface {
	// Send delivers one user message and returns the responder's reply.
	Send(ctx context.Context, text string) (string, error)
}
