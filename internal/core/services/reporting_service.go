package services

import (
	"context"
	"fmt"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ReportingService computes dashboard fee totals.
type ReportingService struct {
	reportingRepo ports.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo ports.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// DailyTotals returns per-day games played, fees charged and fees
// collected over the inclusive date range.
func (s *ReportingService) DailyTotals(ctx context.Context, from, to time.Time) (*dto.DailyTotalsResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date precedes 'from' date", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.DailyTotals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily totals in service: %w", err)
	}

	resp := &dto.DailyTotalsResponse{
		From: from,
		To:   to,
		Rows: make([]dto.DailyTotalsRow, 0, len(rows)),
	}
	for _, row := range rows {
		charged, err := decimal.NewFromString(row.FeesChargedUSD)
		if err != nil {
			return nil, fmt.Errorf("invalid charged total for %s: %w", row.Day.Format("2006-01-02"), err)
		}
		paid, err := decimal.NewFromString(row.FeesPaidUSD)
		if err != nil {
			return nil, fmt.Errorf("invalid paid total for %s: %w", row.Day.Format("2006-01-02"), err)
		}
		resp.Rows = append(resp.Rows, dto.DailyTotalsRow{
			Day:         row.Day,
			GamesPlayed: row.GamesPlayed,
			FeesCharged: charged,
			FeesPaid:    paid,
		})
	}
	return resp, nil
}
