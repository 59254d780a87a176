package dto

import (
	"github.com/planillasvb/planillas_backend/internal/models"
)

// CreateCourtRequest defines the data needed to register a court.
type CreateCourtRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// UpdateCourtRequest defines the editable fields of a court.
type UpdateCourtRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	IsActive *bool  `json:"isActive"`
}

// CourtResponse defines the data returned for a court.
type CourtResponse struct {
	CourtID  string `json:"courtID"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ToCourtResponse converts a models.Court to its response DTO.
func ToCourtResponse(c *models.Court) CourtResponse {
	return CourtResponse{
		CourtID:  c.CourtID,
		Name:     c.Name,
		Location: c.Location,
		IsActive: c.IsActive,
	}
}

// ToListCourtResponse converts a slice of courts.
func ToListCourtResponse(courts []models.Court) []CourtResponse {
	res := make([]CourtResponse, len(courts))
	for i := range courts {
		res[i] = ToCourtResponse(&courts[i])
	}
	return res
}
