package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGameRepository implements ports.GameRepository using pgxpool.
type PgxGameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new PgxGameRepository.
func NewGameRepository(db *pgxpool.Pool) *PgxGameRepository {
	return &PgxGameRepository{db: db}
}

const gameColumns = `
	game_id, game_date, game_time, court_id, category_id, category_name,
	team_a, team_b, total_cost, status,
	is_paid_team_a, is_paid_team_b, payment_ref_team_a, payment_ref_team_b,
	version, created_at, created_by, last_updated_at, last_updated_by
`

func scanGame(row pgx.Row) (*models.Game, error) {
	game := &models.Game{}
	err := row.Scan(
		&game.GameID, &game.Date, &game.Time, &game.CourtID, &game.CategoryID, &game.CategoryName,
		&game.TeamA, &game.TeamB, &game.TotalCost, &game.Status,
		&game.IsPaidTeamA, &game.IsPaidTeamB, &game.PaymentRefTeamA, &game.PaymentRefTeamB,
		&game.Version, &game.CreatedAt, &game.CreatedBy, &game.LastUpdatedAt, &game.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// SaveGame inserts a new game row.
func (r *PgxGameRepository) SaveGame(ctx context.Context, game models.Game) error {
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err := r.db.Exec(ctx, query,
		game.GameID, game.Date, game.Time, game.CourtID, game.CategoryID, game.CategoryName,
		game.TeamA, game.TeamB, game.TotalCost, game.Status,
		game.IsPaidTeamA, game.IsPaidTeamB, game.PaymentRefTeamA, game.PaymentRefTeamB,
		game.Version, game.CreatedAt, game.CreatedBy, game.LastUpdatedAt, game.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting game: %w", err)
	}
	return nil
}

// FindGameByID retrieves a game by its ID.
func (r *PgxGameRepository) FindGameByID(ctx context.Context, gameID string) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE game_id = $1`
	game, err := scanGame(r.db.QueryRow(ctx, query, gameID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding game: %w", err)
	}
	return game, nil
}

// ListGames returns games newest first, optionally filtered by court
// and an inclusive date range.
func (r *PgxGameRepository) ListGames(ctx context.Context, courtID string, from, to *time.Time) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if courtID != "" {
		query += fmt.Sprintf(" AND court_id = $%d", argPos)
		args = append(args, courtID)
		argPos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND game_date >= $%d", argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND game_date <= $%d", argPos)
		args = append(args, *to)
		argPos++
	}
	query += " ORDER BY game_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}
	return games, nil
}

// UpdateGame rewrites a game's schedule fields. Payment flags and
// status go through UpdateGamePayment/UpdateGameStatus instead so the
// version guard stays meaningful.
func (r *PgxGameRepository) UpdateGame(ctx context.Context, game models.Game) error {
	query := `
		UPDATE games
		SET game_date = $2, game_time = $3, court_id = $4,
			category_id = $5, category_name = $6,
			team_a = $7, team_b = $8, total_cost = $9,
			version = version + 1,
			last_updated_at = $10, last_updated_by = $11
		WHERE game_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		game.GameID, game.Date, game.Time, game.CourtID,
		game.CategoryID, game.CategoryName,
		game.TeamA, game.TeamB, game.TotalCost,
		game.LastUpdatedAt, game.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateGamePayment applies a payment-state change conditioned on the
// row's version. The per-team columns are chosen from upd.Team; status
// is written only when upd.Status is set. A zero-row update is
// disambiguated with a follow-up existence check so callers can tell a
// missing game from a lost version race.
func (r *PgxGameRepository) UpdateGamePayment(ctx context.Context, gameID string, upd models.PaymentUpdate, expectedVersion int64) error {
	paidCol, refCol := "is_paid_team_a", "payment_ref_team_a"
	if upd.Team == models.TeamB {
		paidCol, refCol = "is_paid_team_b", "payment_ref_team_b"
	}

	query := fmt.Sprintf(`
		UPDATE games
		SET %s = $3, %s = $4,
			status = COALESCE($5, status),
			version = version + 1,
			last_updated_at = $6, last_updated_by = $7
		WHERE game_id = $1 AND version = $2
	`, paidCol, refCol)

	tag, err := r.db.Exec(ctx, query,
		gameID, expectedVersion,
		upd.Paid, upd.PaymentRef, upd.Status,
		upd.LastUpdatedAt, upd.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating game payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		checkErr := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM games WHERE game_id = $1)`, gameID).Scan(&exists)
		if checkErr != nil {
			return fmt.Errorf("error checking game existence: %w", checkErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// UpdateGameStatus sets the game's status directly.
func (r *PgxGameRepository) UpdateGameStatus(ctx context.Context, gameID string, status models.GameStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE games
		SET status = $2, version = version + 1, last_updated_at = $3, last_updated_by = $4
		WHERE game_id = $1
	`
	tag, err := r.db.Exec(ctx, query, gameID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("error updating game status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGame removes a game row.
func (r *PgxGameRepository) DeleteGame(ctx context.Context, gameID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE game_id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
