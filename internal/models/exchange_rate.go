package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the VES-per-USD rate served to display logic.
// Value is always positive; a non-positive upstream value is treated as
// a fetch failure and never stored.
type ExchangeRate struct {
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
	// Stale marks a rate served past its TTL because the upstream
	// fetch failed. Display-only; callers may show an indicator.
	Stale bool `json:"stale"`
}

// CachedRateEntry is the persisted form of the last good rate, stored
// as a JSON blob under a fixed key.
type CachedRateEntry struct {
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
