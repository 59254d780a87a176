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

// PgxCategoryRepository implements ports.CategoryRepository using pgxpool.
type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new PgxCategoryRepository.
func NewCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{db: db}
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category models.Category) error {
	query := `
		INSERT INTO categories (
			category_id, name, price_per_team,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		category.CategoryID, category.Name, category.PricePerTeam,
		category.CreatedAt, category.CreatedBy, category.LastUpdatedAt, category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting category: %w", err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	query := `
		SELECT category_id, name, price_per_team,
			created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1
	`
	category := &models.Category{}
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID, &category.Name, &category.PricePerTeam,
		&category.CreatedAt, &category.CreatedBy, &category.LastUpdatedAt, &category.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT category_id, name, price_per_team,
			created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.CategoryID, &category.Name, &category.PricePerTeam,
			&category.CreatedAt, &category.CreatedBy, &category.LastUpdatedAt, &category.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory rewrites a category's editable fields.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	query := `
		UPDATE categories
		SET name = $2, price_per_team = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		category.CategoryID, category.Name, category.PricePerTeam,
		category.LastUpdatedAt, category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
