// Package redis persists the exchange-rate cache entry as a small JSON
// blob under a fixed key, the server-side equivalent of the browser
// localStorage blob this store replaced.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/models"
)

// rateCacheKey is the single key owned by this repository. The entry is
// only ever overwritten, never deleted, so stale values remain
// available for the fallback path.
const rateCacheKey = "dollar_rate_cache"

// RateCacheRepository implements ports.RateCacheRepository on Redis.
type RateCacheRepository struct {
	rdb *goredis.Client
}

// NewRateCacheRepository creates a RateCacheRepository. A nil client is
// tolerated and behaves as an always-empty store.
func NewRateCacheRepository(rdb *goredis.Client) *RateCacheRepository {
	return &RateCacheRepository{rdb: rdb}
}

// FindEntry returns the stored entry, or apperrors.ErrNotFound when no
// entry has ever been written.
func (r *RateCacheRepository) FindEntry(ctx context.Context) (*models.CachedRateEntry, error) {
	if r.rdb == nil {
		return nil, apperrors.ErrNotFound
	}

	raw, err := r.rdb.Get(ctx, rateCacheKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error reading rate cache entry: %w", err)
	}

	var entry models.CachedRateEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// A corrupt blob is as good as no blob.
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

// SaveEntry overwrites the stored entry. No expiry is set: the TTL gate
// lives in the service so expired entries stay readable as fallbacks.
func (r *RateCacheRepository) SaveEntry(ctx context.Context, entry models.CachedRateEntry) error {
	if r.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error encoding rate cache entry: %w", err)
	}

	if err := r.rdb.Set(ctx, rateCacheKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("error writing rate cache entry: %w", err)
	}
	return nil
}
