package models

import (
	"github.com/shopspring/decimal"
)

// Category is a referee-fee category. Each team of a game in this
// category pays PricePerTeam, so a game costs PricePerTeam * 2.
type Category struct {
	CategoryID   string          `json:"categoryID" db:"category_id"`
	Name         string          `json:"name" db:"name"`
	PricePerTeam decimal.Decimal `json:"pricePerTeam" db:"price_per_team"` // USD
	AuditFields
}
