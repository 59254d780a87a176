package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

// RateService serves the VES/USD exchange rate with a TTL-gated cache
// and a stale-fallback policy: a failed fetch never fails the caller as
// long as any previous entry exists.
type RateService struct {
	cacheRepo ports.RateCacheRepository
	source    ports.RateSource
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time // injectable clock for tests
}

// NewRateService creates a RateService with the given cache TTL.
func NewRateService(cacheRepo ports.RateCacheRepository, source ports.RateSource, ttl time.Duration, logger *slog.Logger) *RateService {
	return &RateService{
		cacheRepo: cacheRepo,
		source:    source,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// GetRate returns the best-effort current rate.
//
// A cached entry younger than the TTL is returned without touching the
// network. Otherwise one fetch is attempted; on success the entry is
// persisted and returned fresh, on any failure (transport error, bad
// body, non-positive value) the previous entry is returned of whatever
// age, marked stale. Only "no entry ever and the fetch failed" surfaces
// as apperrors.ErrRateUnavailable.
//
// Concurrent callers over an expired cache may each fetch; the fetch is
// idempotent and rare, so no de-duplication is done. Last write wins.
func (s *RateService) GetRate(ctx context.Context) (*models.ExchangeRate, error) {
	cached, err := s.cacheRepo.FindEntry(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		// Treat an unreadable store like a missing entry; the network
		// path below can still serve the caller.
		s.logger.Warn("Failed to read rate cache", slog.String("error", err.Error()))
		cached = nil
	}

	if cached != nil && s.now().Sub(cached.FetchedAt) < s.ttl {
		return &models.ExchangeRate{Value: cached.Value, FetchedAt: cached.FetchedAt}, nil
	}

	fetched, fetchErr := s.source.FetchRate(ctx)
	if fetchErr == nil && fetched.Value.LessThanOrEqual(decimal.Zero) {
		// A zero or negative rate is never stored or served.
		s.logger.Warn("Rate source returned non-positive value", slog.String("value", fetched.Value.String()))
		fetchErr = apperrors.ErrValidation
	}

	if fetchErr != nil {
		s.logger.Warn("Rate fetch failed", slog.String("error", fetchErr.Error()))
		if cached != nil {
			return &models.ExchangeRate{Value: cached.Value, FetchedAt: cached.FetchedAt, Stale: true}, nil
		}
		return nil, apperrors.ErrRateUnavailable
	}

	entry := models.CachedRateEntry{Value: fetched.Value, FetchedAt: s.now()}
	if err := s.cacheRepo.SaveEntry(ctx, entry); err != nil {
		// The fetched rate is still good for this caller.
		s.logger.Warn("Failed to persist rate cache entry", slog.String("error", err.Error()))
	}

	return &models.ExchangeRate{Value: entry.Value, FetchedAt: entry.FetchedAt}, nil
}
