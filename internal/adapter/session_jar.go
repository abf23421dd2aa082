package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/models"
)

// SessionJar is the ambient session credential: an [http.CookieJar] that
// mirrors every cookie the service sets into a [store.CookieRepository] so
// that an authenticated session survives a restart. Controllers never touch
// it; it is handed to the HTTP client once at wiring time.
type SessionJar struct {
	ctx    context.Context
	jar    *cookiejar.Jar
	repo   store.CookieRepository
	logger *logger.Logger
	now    func() time.Time
}

var _ http.CookieJar = (*SessionJar)(nil)

// NewSessionJar builds the jar and restores the cookies persisted in repo,
// dropping any that have expired. A nil repo yields a memory-only jar.
func NewSessionJar(ctx context.Context, repo store.CookieRepository, log *logger.Logger) (*SessionJar, error) {
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	j := &SessionJar{
		ctx:    ctx,
		jar:    inner,
		repo:   repo,
		logger: log,
		now:    time.Now,
	}

	if err = j.restore(); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *SessionJar) restore() error {
	if j.repo == nil {
		return nil
	}

	now := j.now()
	if purged, err := j.repo.PurgeExpired(j.ctx, now); err != nil {
		j.logger.Warn().Err(err).Msg("failed to purge expired cookies")
	} else if purged > 0 {
		j.logger.Debug().Int64("purged", purged).Msg("expired cookies purged")
	}

	cookies, err := j.repo.LoadCookies(j.ctx, now)
	if err != nil {
		return fmt.Errorf("error restoring session cookies: %w", err)
	}

	for _, c := range cookies {
		j.jar.SetCookies(cookieURL(c), []*http.Cookie{toHTTPCookie(c)})
	}
	j.logger.Debug().Int("cookies", len(cookies)).Msg("session cookies restored")

	return nil
}

// Cookies implements [http.CookieJar].
func (j *SessionJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// SetCookies implements [http.CookieJar]. Cookies are applied to the in-memory
// jar first; persistence failures are logged and never surface to the caller.
func (j *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)

	if j.repo == nil {
		return
	}

	now := j.now()
	for _, c := range cookies {
		stored := fromHTTPCookie(u, c, now)

		if isRemoval(c, now) {
			err := j.repo.DeleteCookie(j.ctx, stored.Host, stored.Name, stored.Path)
			if err != nil && !errors.Is(err, store.ErrCookieNotFound) {
				j.logger.Err(err).Str("cookie", c.Name).Msg("failed to delete session cookie")
			}
			continue
		}

		if err := j.repo.SaveCookie(j.ctx, stored); err != nil {
			j.logger.Err(err).Str("cookie", c.Name).Msg("failed to persist session cookie")
		}
	}
}

// isRemoval reports whether the server asked to drop the cookie.
func isRemoval(c *http.Cookie, now time.Time) bool {
	if c.MaxAge < 0 {
		return true
	}
	return c.MaxAge == 0 && !c.Expires.IsZero() && !c.Expires.After(now)
}

func fromHTTPCookie(u *url.URL, c *http.Cookie, now time.Time) models.StoredCookie {
	path := c.Path
	if path == "" || path[0] != '/' {
		path = "/"
	}

	var expires time.Time
	switch {
	case c.MaxAge > 0:
		expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		expires = c.Expires
	}

	return models.StoredCookie{
		Host:     u.Hostname(),
		Name:     c.Name,
		Value:    c.Value,
		Path:     path,
		Domain:   c.Domain,
		Expires:  expires.UTC(),
		Secure:   c.Secure,
		HTTPOnly: c.HttpOnly,
	}
}

func toHTTPCookie(c models.StoredCookie) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HTTPOnly,
	}
}

func cookieURL(c models.StoredCookie) *url.URL {
	scheme := "http"
	if c.Secure {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: c.Host, Path: c.Path}
}
