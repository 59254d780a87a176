package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameStatus is the lifecycle state of a game's fee sheet.
type GameStatus string

const (
	GameStatusPending   GameStatus = "pending"
	GameStatusCompleted GameStatus = "completed"
	GameStatusCancelled GameStatus = "cancelled"
)

// Team identifies one of the two sides of a game.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Game represents a scheduled game and its referee-fee sheet.
// CategoryName is denormalized from the category at write time so the
// sheet survives later category renames, mirroring the document shape
// the referee screen reads.
type Game struct {
	GameID       string          `json:"gameID" db:"game_id"`
	Date         time.Time       `json:"date" db:"game_date"`
	Time         string          `json:"time,omitempty" db:"game_time"` // "HH:MM", optional
	CourtID      string          `json:"courtID" db:"court_id"`
	CategoryID   string          `json:"categoryID" db:"category_id"`
	CategoryName string          `json:"categoryName" db:"category_name"`
	TeamA        string          `json:"teamA" db:"team_a"`
	TeamB        string          `json:"teamB" db:"team_b"`
	TotalCost    decimal.Decimal `json:"totalCost" db:"total_cost"` // USD, PricePerTeam * 2

	Status GameStatus `json:"status" db:"status"`

	IsPaidTeamA     bool    `json:"isPaidTeamA" db:"is_paid_team_a"`
	IsPaidTeamB     bool    `json:"isPaidTeamB" db:"is_paid_team_b"`
	PaymentRefTeamA *string `json:"paymentRefTeamA,omitempty" db:"payment_ref_team_a"`
	PaymentRefTeamB *string `json:"paymentRefTeamB,omitempty" db:"payment_ref_team_b"`

	// Version guards payment updates against concurrent writers.
	// Bumped on every successful write to the row.
	Version int64 `json:"version" db:"version"`

	AuditFields
}

// PaidFlag returns the paid flag for the given team.
func (g *Game) PaidFlag(team Team) bool {
	if team == TeamA {
		return g.IsPaidTeamA
	}
	return g.IsPaidTeamB
}

// PaymentUpdate is the typed partial update produced by a payment-state
// change. Only the changed team's fields are populated; Status is nil
// when the derived status equals the game's current status. Modelling
// the update as a closed struct rather than an open field map lets the
// compiler enforce which combinations are expressible.
type PaymentUpdate struct {
	Team       Team
	Paid       bool
	PaymentRef *string // nil clears the reference
	Status     *GameStatus

	LastUpdatedAt time.Time
	LastUpdatedBy string
}
