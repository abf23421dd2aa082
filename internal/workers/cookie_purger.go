// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/store"
)

// DefaultPurgeInterval is how often expired session cookies are removed
// from the local database.
const DefaultPurgeInterval = 10 * time.Minute

// CookiePurger periodically deletes expired cookies from the session store
// so a long-running client does not keep stale credentials on disk.
type CookiePurger struct {
	repo     store.CookieRepository
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewCookiePurger returns a purger ticking every interval. A non-positive
// interval falls back to DefaultPurgeInterval.
func NewCookiePurger(repo store.CookieRepository, interval time.Duration, log *logger.Logger) *CookiePurger {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	return &CookiePurger{
		repo:     repo,
		interval: interval,
		logger:   log,
		now:      time.Now,
	}
}

func (p *CookiePurger) Run(ctx context.Context) {
	if p.repo == nil {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *CookiePurger) purge(ctx context.Context) {
	removed, err := p.repo.PurgeExpired(ctx, p.now())
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn().Err(err).Msg("purge expired cookies")
		}
		return
	}
	if removed > 0 {
		p.logger.Debug().Int64("removed", removed).Msg("purged expired cookies")
	}
}
