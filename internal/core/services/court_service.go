package services

import (
	"context"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/google/uuid"
)

// CourtService provides business logic for the court catalog.
type CourtService struct {
	courtRepo ports.CourtRepository
}

// NewCourtService creates a new CourtService.
func NewCourtService(courtRepo ports.CourtRepository) *CourtService {
	return &CourtService{courtRepo: courtRepo}
}

// CreateCourt registers a court.
func (s *CourtService) CreateCourt(ctx context.Context, req dto.CreateCourtRequest, creatorUserID string) (*models.Court, error) {
	now := time.Now()
	court := models.Court{
		CourtID:  uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.courtRepo.SaveCourt(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to create court in service: %w", err)
	}
	return &court, nil
}

// GetCourtByID retrieves a single court.
func (s *CourtService) GetCourtByID(ctx context.Context, courtID string) (*models.Court, error) {
	court, err := s.courtRepo.FindCourtByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	return court, nil
}

// ListCourts lists all courts.
func (s *CourtService) ListCourts(ctx context.Context) ([]models.Court, error) {
	courts, err := s.courtRepo.ListCourts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts in service: %w", err)
	}
	if courts == nil {
		return []models.Court{}, nil
	}
	return courts, nil
}

// UpdateCourt edits a court.
func (s *CourtService) UpdateCourt(ctx context.Context, courtID string, req dto.UpdateCourtRequest, updaterUserID string) (*models.Court, error) {
	court, err := s.courtRepo.FindCourtByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	court.Name = req.Name
	court.Location = req.Location
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}
	court.LastUpdatedAt = time.Now()
	court.LastUpdatedBy = updaterUserID

	if err := s.courtRepo.UpdateCourt(ctx, *court); err != nil {
		return nil, fmt.Errorf("failed to update court in service: %w", err)
	}
	return court, nil
}
