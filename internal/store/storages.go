package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calmora/internal/config"
	"github.com/MKhiriev/calmora/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// CookieRepository is the SQLite-backed store behind the session jar.
	CookieRepository CookieRepository

	db *DB
}

// NewClientStorages opens the SQLite session database named by cfg.DSN,
// applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CookieRepository: NewCookieRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ServerStorages groups the in-memory repositories of the development server.
type ServerStorages struct {
	AccountRepository AccountRepository
	SessionRepository SessionRepository
}

func NewServerStorages() *ServerStorages {
	return &ServerStorages{
		AccountRepository: NewMemoryAccountRepository(),
		SessionRepository: NewMemorySessionRepository(),
	}
}
