package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/migrations"
)

const (
	maxExecAttempts = 3
	execRetryDelay  = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs a write statement, repeating it while the classifier
// reports the failure as transient (busy or locked database file).
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var lastErr error

	for attempt := 1; attempt <= maxExecAttempts; attempt++ {
		res, err := db.ExecContext(ctx, query, args...)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			break
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", lastErr, ctx.Err())
		case <-time.After(execRetryDelay * time.Duration(attempt)):
		}
	}

	return nil, lastErr
}
