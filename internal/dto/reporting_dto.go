package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotalsRow is one day of the dashboard report.
type DailyTotalsRow struct {
	Day         time.Time       `json:"day"`
	GamesPlayed int             `json:"gamesPlayed"`
	FeesCharged decimal.Decimal `json:"feesCharged"` // USD
	FeesPaid    decimal.Decimal `json:"feesPaid"`    // USD
}

// DailyTotalsResponse wraps the report rows with the requested range.
type DailyTotalsResponse struct {
	From time.Time        `json:"from"`
	To   time.Time        `json:"to"`
	Rows []DailyTotalsRow `json:"rows"`
}
