package dto

import (
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

// RateResponse is the VES/USD rate served to the frontend.
type RateResponse struct {
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Stale     bool            `json:"stale"`
}

// ToRateResponse converts a models.ExchangeRate to its response DTO.
func ToRateResponse(rate *models.ExchangeRate) RateResponse {
	return RateResponse{
		Value:     rate.Value,
		FetchedAt: rate.FetchedAt,
		Stale:     rate.Stale,
	}
}
