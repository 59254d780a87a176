package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateCacheRepository ---
type MockRateCacheRepository struct {
	mock.Mock
}

func (m *MockRateCacheRepository) FindEntry(ctx context.Context) (*models.CachedRateEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CachedRateEntry), args.Error(1)
}

func (m *MockRateCacheRepository) SaveEntry(ctx context.Context, entry models.CachedRateEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRate(ctx context.Context) (*models.CachedRateEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CachedRateEntry), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockCache  *MockRateCacheRepository
	mockSource *MockRateSource
	service    *RateService
	now        time.Time
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockCache = new(MockRateCacheRepository)
	suite.mockSource = new(MockRateSource)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.service = NewRateService(suite.mockCache, suite.mockSource, 4*time.Hour, slog.Default())
	suite.service.now = func() time.Time { return suite.now }
}

func (suite *RateServiceTestSuite) TestGetRate_FreshCacheHit_NoFetch() {
	ctx := context.Background()
	cached := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: suite.now.Add(-1 * time.Hour),
	}
	suite.mockCache.On("FindEntry", ctx).Return(cached, nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(cached.Value))
	suite.Equal(cached.FetchedAt, rate.FetchedAt)
	suite.False(rate.Stale)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRate", mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_ExpiredCache_FetchesAndPersists() {
	ctx := context.Background()
	cached := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: suite.now.Add(-5 * time.Hour),
	}
	fetched := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(37.1),
		FetchedAt: suite.now,
	}
	suite.mockCache.On("FindEntry", ctx).Return(cached, nil).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()
	suite.mockCache.On("SaveEntry", ctx, models.CachedRateEntry{
		Value:     fetched.Value,
		FetchedAt: suite.now,
	}).Return(nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(fetched.Value))
	suite.Equal(suite.now, rate.FetchedAt)
	suite.False(rate.Stale)
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRate_FetchFails_ServesStale() {
	ctx := context.Background()
	cached := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: suite.now.Add(-26 * time.Hour), // well past the TTL
	}
	suite.mockCache.On("FindEntry", ctx).Return(cached, nil).Once()
	suite.mockSource.On("FetchRate", ctx).Return(nil, errors.New("connection refused")).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(cached.Value))
	suite.Equal(cached.FetchedAt, rate.FetchedAt)
	suite.True(rate.Stale)
	suite.mockCache.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRate_ColdAndOffline_Unavailable() {
	ctx := context.Background()
	suite.mockCache.On("FindEntry", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRate", ctx).Return(nil, errors.New("connection refused")).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *RateServiceTestSuite) TestGetRate_NonPositiveValue_TreatedAsFetchFailure() {
	ctx := context.Background()
	cached := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: suite.now.Add(-5 * time.Hour),
	}
	fetched := &models.CachedRateEntry{Value: decimal.Zero, FetchedAt: suite.now}
	suite.mockCache.On("FindEntry", ctx).Return(cached, nil).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(cached.Value))
	suite.True(rate.Stale)
	suite.mockCache.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRate_NonPositiveValueAndColdCache_Unavailable() {
	ctx := context.Background()
	fetched := &models.CachedRateEntry{Value: decimal.NewFromInt(-1), FetchedAt: suite.now}
	suite.mockCache.On("FindEntry", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *RateServiceTestSuite) TestGetRate_PersistFailure_StillServesFetched() {
	ctx := context.Background()
	fetched := &models.CachedRateEntry{Value: decimal.NewFromFloat(37.1), FetchedAt: suite.now}
	suite.mockCache.On("FindEntry", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()
	suite.mockCache.On("SaveEntry", ctx, mock.AnythingOfType("models.CachedRateEntry")).Return(errors.New("redis down")).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(fetched.Value))
	suite.False(rate.Stale)
}

func (suite *RateServiceTestSuite) TestGetRate_CacheReadError_FallsThroughToFetch() {
	ctx := context.Background()
	fetched := &models.CachedRateEntry{Value: decimal.NewFromFloat(37.1), FetchedAt: suite.now}
	suite.mockCache.On("FindEntry", ctx).Return(nil, errors.New("corrupt blob")).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()
	suite.mockCache.On("SaveEntry", ctx, mock.AnythingOfType("models.CachedRateEntry")).Return(nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(fetched.Value))
}

func (suite *RateServiceTestSuite) TestGetRate_EntryAtExactTTLBoundary_Refetches() {
	ctx := context.Background()
	cached := &models.CachedRateEntry{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: suite.now.Add(-4 * time.Hour), // age == TTL
	}
	fetched := &models.CachedRateEntry{Value: decimal.NewFromFloat(37.1), FetchedAt: suite.now}
	suite.mockCache.On("FindEntry", ctx).Return(cached, nil).Once()
	suite.mockSource.On("FetchRate", ctx).Return(fetched, nil).Once()
	suite.mockCache.On("SaveEntry", ctx, mock.AnythingOfType("models.CachedRateEntry")).Return(nil).Once()

	rate, err := suite.service.GetRate(ctx)

	suite.Require().NoError(err)
	suite.True(rate.Value.Equal(fetched.Value))
	suite.mockSource.AssertExpectations(suite.T())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
