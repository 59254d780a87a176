package dto

import (
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

// CreateGameRequest defines the data needed to schedule a game.
// TotalCost is not accepted from the client; it is derived from the
// category's price per team.
type CreateGameRequest struct {
	Date       time.Time `json:"date" binding:"required"`
	Time       string    `json:"time"` // "HH:MM", optional
	CourtID    string    `json:"courtID" binding:"required"`
	CategoryID string    `json:"categoryID" binding:"required"`
	TeamA      string    `json:"teamA" binding:"required"`
	TeamB      string    `json:"teamB" binding:"required"`
}

// UpdateGameRequest mirrors CreateGameRequest for full edits.
type UpdateGameRequest struct {
	Date       time.Time `json:"date" binding:"required"`
	Time       string    `json:"time"`
	CourtID    string    `json:"courtID" binding:"required"`
	CategoryID string    `json:"categoryID" binding:"required"`
	TeamA      string    `json:"teamA" binding:"required"`
	TeamB      string    `json:"teamB" binding:"required"`
}

// UpdateGameStatusRequest carries a manual status transition.
type UpdateGameStatusRequest struct {
	Status models.GameStatus `json:"status" binding:"required,gamestatus"`
}

// PaymentChangeRequest toggles one team's paid flag. Reference is only
// accepted when Paid is true.
type PaymentChangeRequest struct {
	Paid      *bool   `json:"paid" binding:"required"`
	Reference *string `json:"reference"`
}

// DualAmount is a USD amount with its optional local-currency display.
type DualAmount struct {
	USD decimal.Decimal `json:"usd"`
	// Formatted display strings; VES fields are omitted when no
	// exchange rate is available.
	USDDisplay string `json:"usdDisplay"`
	VESDisplay string `json:"vesDisplay,omitempty"`
}

// GameResponse defines the data returned for a game.
type GameResponse struct {
	GameID       string     `json:"gameID"`
	Date         time.Time  `json:"date"`
	Time         string     `json:"time,omitempty"`
	CourtID      string     `json:"courtID"`
	CategoryID   string     `json:"categoryID"`
	CategoryName string     `json:"categoryName"`
	TeamA        string     `json:"teamA"`
	TeamB        string     `json:"teamB"`
	TotalCost    DualAmount `json:"totalCost"`

	Status models.GameStatus `json:"status"`

	IsPaidTeamA     bool    `json:"isPaidTeamA"`
	IsPaidTeamB     bool    `json:"isPaidTeamB"`
	PaymentRefTeamA *string `json:"paymentRefTeamA,omitempty"`
	PaymentRefTeamB *string `json:"paymentRefTeamB,omitempty"`

	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToGameResponse converts a models.Game to its response DTO. The
// TotalCost display fields are filled in by the handler, which owns the
// exchange-rate composition.
func ToGameResponse(g *models.Game) GameResponse {
	return GameResponse{
		GameID:          g.GameID,
		Date:            g.Date,
		Time:            g.Time,
		CourtID:         g.CourtID,
		CategoryID:      g.CategoryID,
		CategoryName:    g.CategoryName,
		TeamA:           g.TeamA,
		TeamB:           g.TeamB,
		TotalCost:       DualAmount{USD: g.TotalCost},
		Status:          g.Status,
		IsPaidTeamA:     g.IsPaidTeamA,
		IsPaidTeamB:     g.IsPaidTeamB,
		PaymentRefTeamA: g.PaymentRefTeamA,
		PaymentRefTeamB: g.PaymentRefTeamB,
		Version:         g.Version,
		CreatedAt:       g.CreatedAt,
		LastUpdatedAt:   g.LastUpdatedAt,
	}
}
