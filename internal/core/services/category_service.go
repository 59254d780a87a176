package services

import (
	"context"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryService provides business logic for fee categories.
type CategoryService struct {
	categoryRepo ports.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a fee category.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*models.Category, error) {
	if req.PricePerTeam.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price per team must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	category := models.Category{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		PricePerTeam: req.PricePerTeam,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return &category, nil
}

// GetCategoryByID retrieves a single category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		return []models.Category{}, nil
	}
	return categories, nil
}

// UpdateCategory edits a category's name and price. Existing games keep
// their denormalized name and cost; only future writes pick up the new
// values.
func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*models.Category, error) {
	if req.PricePerTeam.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price per team must be positive", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.PricePerTeam = req.PricePerTeam
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category in service: %w", err)
	}
	return nil
}
