package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository aggregates fee totals in SQL so the report
// never loads full game rows into memory.
type PgxReportingRepository struct {
	db *pgxpool.Pool
}

// NewReportingRepository creates a new PgxReportingRepository.
func NewReportingRepository(db *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{db: db}
}

// DailyTotals returns one row per day with played games between from
// and to (inclusive). Cancelled games are excluded; a team's paid half
// is total_cost / 2.
func (r *PgxReportingRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]ports.DailyFeeTotals, error) {
	query := `
		SELECT
			game_date AS day,
			COUNT(*) AS games_played,
			COALESCE(SUM(total_cost), 0)::text AS fees_charged,
			COALESCE(SUM(
				CASE WHEN is_paid_team_a THEN total_cost / 2 ELSE 0 END +
				CASE WHEN is_paid_team_b THEN total_cost / 2 ELSE 0 END
			), 0)::text AS fees_paid
		FROM games
		WHERE game_date >= $1 AND game_date <= $2
			AND status <> 'cancelled'
		GROUP BY game_date
		ORDER BY game_date ASC
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily totals: %w", err)
	}
	defer rows.Close()

	var totals []ports.DailyFeeTotals
	for rows.Next() {
		var row ports.DailyFeeTotals
		if err := rows.Scan(&row.Day, &row.GamesPlayed, &row.FeesChargedUSD, &row.FeesPaidUSD); err != nil {
			return nil, fmt.Errorf("error scanning daily totals row: %w", err)
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals rows: %w", err)
	}
	return totals, nil
}
