package store

import (
	"context"
	"time"

	"github.com/MKhiriev/calmora/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CookieRepository persists the client's session cookies so that a session
// survives a restart.
type CookieRepository interface {
	// SaveCookie inserts or replaces the cookie keyed by host, name and path.
	SaveCookie(ctx context.Context, cookie models.StoredCookie) error
	// DeleteCookie removes the cookie keyed by host, name and path.
	DeleteCookie(ctx context.Context, host, name, path string) error
	// LoadCookies returns every cookie that is still valid at now.
	LoadCookies(ctx context.Context, now time.Time) ([]models.StoredCookie, error)
	// PurgeExpired removes cookies that expired at or before now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// AccountRepository keeps the accounts of the development server.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) error
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
}

// SessionRepository maps opaque session ids to account emails.
type SessionRepository interface {
	CreateSession(ctx context.Context, sessionID, email string) error
	FindSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
