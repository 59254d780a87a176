package dto

import (
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a fee category.
type CreateCategoryRequest struct {
	Name         string          `json:"name" binding:"required"`
	PricePerTeam decimal.Decimal `json:"pricePerTeam" binding:"required"`
}

// UpdateCategoryRequest defines the editable fields of a category.
type UpdateCategoryRequest struct {
	Name         string          `json:"name" binding:"required"`
	PricePerTeam decimal.Decimal `json:"pricePerTeam" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string          `json:"categoryID"`
	Name          string          `json:"name"`
	PricePerTeam  decimal.Decimal `json:"pricePerTeam"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a models.Category to its response DTO.
func ToCategoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		PricePerTeam:  cat.PricePerTeam,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(cats []models.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i := range cats {
		res[i] = ToCategoryResponse(&cats[i])
	}
	return res
}
