package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/calmora/models"
)

const sessionCookiesTable = "session_cookies"

var cookieColumns = []string{
	"host",
	"name",
	"path",
	"value",
	"domain",
	"expires_at",
	"secure",
	"http_only",
}

const upsertCookieSuffix = `ON CONFLICT (host, name, path) DO UPDATE SET
	value      = excluded.value,
	domain     = excluded.domain,
	expires_at = excluded.expires_at,
	secure     = excluded.secure,
	http_only  = excluded.http_only,
	updated_at = CURRENT_TIMESTAMP`

func buildUpsertCookieQuery(c models.StoredCookie) (string, []any, error) {
	return sq.Insert(sessionCookiesTable).
		Columns(cookieColumns...).
		Values(c.Host, c.Name, c.Path, c.Value, c.Domain, nullableTime(c.Expires), c.Secure, c.HTTPOnly).
		Suffix(upsertCookieSuffix).
		ToSql()
}

func buildDeleteCookieQuery(host, name, path string) (string, []any, error) {
	return sq.Delete(sessionCookiesTable).
		Where(sq.Eq{"host": host, "name": name, "path": path}).
		ToSql()
}

func buildLoadCookiesQuery(now time.Time) (string, []any, error) {
	return sq.Select(cookieColumns...).
		From(sessionCookiesTable).
		Where(sq.Or{
			sq.Eq{"expires_at": nil},
			sq.Gt{"expires_at": now.UTC()},
		}).
		OrderBy("host", "name", "path").
		ToSql()
}

func buildPurgeExpiredQuery(now time.Time) (string, []any, error) {
	return sq.Delete(sessionCookiesTable).
		Where(sq.And{
			sq.NotEq{"expires_at": nil},
			sq.LtOrEq{"expires_at": now.UTC()},
		}).
		ToSql()
}

// nullableTime stores session cookies (zero expiry) as NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
