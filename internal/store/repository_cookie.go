package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/models"
)

type cookieRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	return &cookieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cookieRepository) SaveCookie(ctx context.Context, cookie models.StoredCookie) error {
	query, args, err := buildUpsertCookieQuery(cookie)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.SaveCookie").
			Str("host", cookie.Host).
			Str("name", cookie.Name).
			Msg("failed to upsert cookie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *cookieRepository) DeleteCookie(ctx context.Context, host, name, path string) error {
	query, args, err := buildDeleteCookieQuery(host, name, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "cookieRepository.DeleteCookie").
			Str("host", host).
			Str("name", name).
			Msg("failed to delete cookie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCookieNotFound
	}

	return nil
}

func (r *cookieRepository) LoadCookies(ctx context.Context, now time.Time) ([]models.StoredCookie, error) {
	query, args, err := buildLoadCookiesQuery(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "cookieRepository.LoadCookies").Msg("failed to query cookies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cookies []models.StoredCookie
	for rows.Next() {
		var (
			c       models.StoredCookie
			expires sql.NullTime
		)
		if err = rows.Scan(&c.Host, &c.Name, &c.Path, &c.Value, &c.Domain, &expires, &c.Secure, &c.HTTPOnly); err != nil {
			r.logger.Err(err).Str("func", "cookieRepository.LoadCookies").Msg("failed to scan cookie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if expires.Valid {
			c.Expires = expires.Time.UTC()
		}
		cookies = append(cookies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cookies, nil
}

func (r *cookieRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildPurgeExpiredQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "cookieRepository.PurgeExpired").Msg("failed to purge expired cookies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}
