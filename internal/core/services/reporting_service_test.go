package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]ports.DailyFeeTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DailyFeeTotals), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestDailyTotals_Success() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	rows := []ports.DailyFeeTotals{
		{Day: from, GamesPlayed: 3, FeesChargedUSD: "90.0000", FeesPaidUSD: "45.0000"},
		{Day: from.AddDate(0, 0, 1), GamesPlayed: 1, FeesChargedUSD: "30.0000", FeesPaidUSD: "30.0000"},
	}
	suite.mockRepo.On("DailyTotals", ctx, from, to).Return(rows, nil).Once()

	report, err := suite.service.DailyTotals(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(from, report.From)
	suite.Equal(to, report.To)
	suite.Require().Len(report.Rows, 2)
	suite.Equal(3, report.Rows[0].GamesPlayed)
	suite.True(report.Rows[0].FeesCharged.Equal(decimal.NewFromInt(90)))
	suite.True(report.Rows[0].FeesPaid.Equal(decimal.NewFromInt(45)))
	suite.True(report.Rows[1].FeesPaid.Equal(decimal.NewFromInt(30)))
}

func (suite *ReportingServiceTestSuite) TestDailyTotals_InvertedRange_Rejected() {
	ctx := context.Background()
	from := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.DailyTotals(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DailyTotals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestDailyTotals_EmptyRange() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from

	suite.mockRepo.On("DailyTotals", ctx, from, to).Return([]ports.DailyFeeTotals(nil), nil).Once()

	report, err := suite.service.DailyTotals(ctx, from, to)

	suite.Require().NoError(err)
	suite.NotNil(report.Rows)
	suite.Empty(report.Rows)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
