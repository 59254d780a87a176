package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCourtRepository implements ports.CourtRepository using pgxpool.
type PgxCourtRepository struct {
	db *pgxpool.Pool
}

// NewCourtRepository creates a new PgxCourtRepository.
func NewCourtRepository(db *pgxpool.Pool) *PgxCourtRepository {
	return &PgxCourtRepository{db: db}
}

// SaveCourt inserts a new court.
func (r *PgxCourtRepository) SaveCourt(ctx context.Context, court models.Court) error {
	query := `
		INSERT INTO courts (
			court_id, name, location, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		court.CourtID, court.Name, court.Location, court.IsActive,
		court.CreatedAt, court.CreatedBy, court.LastUpdatedAt, court.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting court: %w", err)
	}
	return nil
}

// FindCourtByID retrieves a court by its ID.
func (r *PgxCourtRepository) FindCourtByID(ctx context.Context, courtID string) (*models.Court, error) {
	query := `
		SELECT court_id, name, location, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM courts
		WHERE court_id = $1
	`
	court := &models.Court{}
	err := r.db.QueryRow(ctx, query, courtID).Scan(
		&court.CourtID, &court.Name, &court.Location, &court.IsActive,
		&court.CreatedAt, &court.CreatedBy, &court.LastUpdatedAt, &court.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding court: %w", err)
	}
	return court, nil
}

// ListCourts returns all courts ordered by name.
func (r *PgxCourtRepository) ListCourts(ctx context.Context) ([]models.Court, error) {
	query := `
		SELECT court_id, name, location, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM courts
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courts: %w", err)
	}
	defer rows.Close()

	var courts []models.Court
	for rows.Next() {
		var court models.Court
		if err := rows.Scan(
			&court.CourtID, &court.Name, &court.Location, &court.IsActive,
			&court.CreatedAt, &court.CreatedBy, &court.LastUpdatedAt, &court.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}
	return courts, nil
}

// UpdateCourt rewrites a court's editable fields.
func (r *PgxCourtRepository) UpdateCourt(ctx context.Context, court models.Court) error {
	query := `
		UPDATE courts
		SET name = $2, location = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE court_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		court.CourtID, court.Name, court.Location, court.IsActive,
		court.LastUpdatedAt, court.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating court: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
