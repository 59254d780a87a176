package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// teamsPerGame is how many sides pay the per-team fee.
var teamsPerGame = decimal.NewFromInt(2)

// GameService provides business logic for games and their fee sheets,
// including payment reconciliation.
type GameService struct {
	gameRepo        ports.GameRepository
	categoryService CategorySvcReader
}

// CategorySvcReader is the slice of the category service GameService
// needs to price a game.
type CategorySvcReader interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error)
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo ports.GameRepository, categoryService CategorySvcReader) *GameService {
	return &GameService{
		gameRepo:        gameRepo,
		categoryService: categoryService,
	}
}

// CreateGame schedules a game. The total cost is derived from the
// category's price per team and the category name is denormalized onto
// the game.
func (s *GameService) CreateGame(ctx context.Context, req dto.CreateGameRequest, creatorUserID string) (*models.Game, error) {
	category, err := s.categoryService.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category: %w", err)
	}

	now := time.Now()
	game := models.Game{
		GameID:       uuid.NewString(),
		Date:         req.Date,
		Time:         req.Time,
		CourtID:      req.CourtID,
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		TeamA:        req.TeamA,
		TeamB:        req.TeamB,
		TotalCost:    category.PricePerTeam.Mul(teamsPerGame),
		Status:       models.GameStatusPending,
		Version:      1,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.gameRepo.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in service: %w", err)
	}
	return &game, nil
}

// GetGameByID retrieves a single game.
func (s *GameService) GetGameByID(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game in service: %w", err)
	}
	return game, nil
}

// ListGames lists games, newest first, optionally bounded by date and
// filtered by court.
func (s *GameService) ListGames(ctx context.Context, courtID string, from, to *time.Time) ([]models.Game, error) {
	games, err := s.gameRepo.ListGames(ctx, courtID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list games in service: %w", err)
	}
	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}

// UpdateGame rewrites the schedulable fields of a game and re-derives
// the total cost from the (possibly different) category.
func (s *GameService) UpdateGame(ctx context.Context, gameID string, req dto.UpdateGameRequest, updaterUserID string) (*models.Game, error) {
	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryService.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category: %w", err)
	}

	game.Date = req.Date
	game.Time = req.Time
	game.CourtID = req.CourtID
	game.CategoryID = category.CategoryID
	game.CategoryName = category.Name
	game.TeamA = req.TeamA
	game.TeamB = req.TeamB
	game.TotalCost = category.PricePerTeam.Mul(teamsPerGame)
	game.LastUpdatedAt = time.Now()
	game.LastUpdatedBy = updaterUserID

	if err := s.gameRepo.UpdateGame(ctx, *game); err != nil {
		return nil, fmt.Errorf("failed to update game in service: %w", err)
	}
	return game, nil
}

// UpdateGameStatus applies a manual status transition. Unlike payment
// derivation, a manual transition may set any of the three states,
// including moving a game out of cancelled.
func (s *GameService) UpdateGameStatus(ctx context.Context, gameID string, status models.GameStatus, updaterUserID string) (*models.Game, error) {
	switch status {
	case models.GameStatusPending, models.GameStatusCompleted, models.GameStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown game status '%s'", apperrors.ErrValidation, status)
	}

	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.gameRepo.UpdateGameStatus(ctx, gameID, status, updaterUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update game status in service: %w", err)
	}

	game.Status = status
	game.LastUpdatedAt = now
	game.LastUpdatedBy = updaterUserID
	return game, nil
}

// ApplyPaymentChange toggles one team's paid flag and derives the
// resulting game status as a single conceptual read-modify-write.
//
// Rules:
//   - a reference is only accepted when marking paid; unpaying always
//     clears the team's stored reference,
//   - both flags paid derives completed, unless the game is cancelled —
//     cancellation is sticky and only a manual transition reverses it,
//   - revoking a flag on a completed game returns it to pending.
//
// The write is conditional on the version read here; a concurrent
// writer surfaces as apperrors.ErrConflict and the caller may retry
// against fresh state.
func (s *GameService) ApplyPaymentChange(ctx context.Context, gameID string, team models.Team, paid bool, reference *string, updaterUserID string) (*models.Game, error) {
	if team != models.TeamA && team != models.TeamB {
		return nil, fmt.Errorf("%w: unknown team '%s'", apperrors.ErrValidation, team)
	}
	if reference != nil && *reference == "" {
		// The payment form submits an empty reference when the field is
		// left blank; treat it as absent.
		reference = nil
	}
	if reference != nil && !paid {
		return nil, fmt.Errorf("%w: payment reference not allowed when revoking a payment", apperrors.ErrValidation)
	}

	game, err := s.gameRepo.FindGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	paidA, paidB := game.IsPaidTeamA, game.IsPaidTeamB
	if team == models.TeamA {
		paidA = paid
	} else {
		paidB = paid
	}

	newStatus := game.Status
	switch {
	case game.Status == models.GameStatusCancelled:
		// sticky
	case paidA && paidB:
		newStatus = models.GameStatusCompleted
	case game.Status == models.GameStatusCompleted:
		newStatus = models.GameStatusPending
	}

	upd := models.PaymentUpdate{
		Team:          team,
		Paid:          paid,
		PaymentRef:    reference,
		LastUpdatedAt: time.Now(),
		LastUpdatedBy: updaterUserID,
	}
	if newStatus != game.Status {
		upd.Status = &newStatus
	}

	if err := s.gameRepo.UpdateGamePayment(ctx, gameID, upd, game.Version); err != nil {
		return nil, err
	}

	if team == models.TeamA {
		game.IsPaidTeamA = paid
		game.PaymentRefTeamA = reference
	} else {
		game.IsPaidTeamB = paid
		game.PaymentRefTeamB = reference
	}
	game.Status = newStatus
	game.Version++
	game.LastUpdatedAt = upd.LastUpdatedAt
	game.LastUpdatedBy = upd.LastUpdatedBy
	return game, nil
}

// DeleteGame removes a game and its fee sheet.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := s.gameRepo.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game in service: %w", err)
	}
	return nil
}
