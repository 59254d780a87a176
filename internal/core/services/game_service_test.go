package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/services"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GameRepository ---
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) SaveGame(ctx context.Context, game models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) FindGameByID(ctx context.Context, gameID string) (*models.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) ListGames(ctx context.Context, courtID string, from, to *time.Time) ([]models.Game, error) {
	args := m.Called(ctx, courtID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) UpdateGame(ctx context.Context, game models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) UpdateGamePayment(ctx context.Context, gameID string, upd models.PaymentUpdate, expectedVersion int64) error {
	args := m.Called(ctx, gameID, upd, expectedVersion)
	return args.Error(0)
}

func (m *MockGameRepository) UpdateGameStatus(ctx context.Context, gameID string, status models.GameStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, gameID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockGameRepository) DeleteGame(ctx context.Context, gameID string) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

// --- Mock CategorySvcReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// --- Test Suite ---
type GameServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockGameRepository
	mockCategory *MockCategoryReader
	service      *services.GameService
}

func (suite *GameServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGameRepository)
	suite.mockCategory = new(MockCategoryReader)
	suite.service = services.NewGameService(suite.mockRepo, suite.mockCategory)
}

func (suite *GameServiceTestSuite) pendingGame() *models.Game {
	return &models.Game{
		GameID:       uuid.NewString(),
		Date:         time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		CourtID:      uuid.NewString(),
		CategoryID:   uuid.NewString(),
		CategoryName: "Sub-17",
		TeamA:        "Tiburones",
		TeamB:        "Caribes",
		TotalCost:    decimal.NewFromInt(30),
		Status:       models.GameStatusPending,
		Version:      3,
	}
}

// --- CreateGame ---

func (suite *GameServiceTestSuite) TestCreateGame_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateGameRequest{
		Date:       time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Time:       "18:30",
		CourtID:    uuid.NewString(),
		CategoryID: categoryID,
		TeamA:      "Tiburones",
		TeamB:      "Caribes",
	}
	category := &models.Category{
		CategoryID:   categoryID,
		Name:         "Sub-17",
		PricePerTeam: decimal.NewFromInt(15),
	}

	suite.mockCategory.On("GetCategoryByID", ctx, categoryID).Return(category, nil).Once()
	suite.mockRepo.On("SaveGame", ctx, mock.AnythingOfType("models.Game")).Return(nil).Once()

	game, err := suite.service.CreateGame(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(game)
	suite.NotEmpty(game.GameID)
	suite.Equal("Sub-17", game.CategoryName)
	suite.True(game.TotalCost.Equal(decimal.NewFromInt(30)), "total cost should be price per team times two")
	suite.Equal(models.GameStatusPending, game.Status)
	suite.False(game.IsPaidTeamA)
	suite.False(game.IsPaidTeamB)
	suite.Equal(int64(1), game.Version)
	suite.Equal(creatorUserID, game.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestCreateGame_UnknownCategory_ValidationError() {
	ctx := context.Background()
	req := dto.CreateGameRequest{
		Date:       time.Now(),
		CourtID:    uuid.NewString(),
		CategoryID: "missing",
		TeamA:      "Tiburones",
		TeamB:      "Caribes",
	}
	suite.mockCategory.On("GetCategoryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	game, err := suite.service.CreateGame(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(game)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGame", mock.Anything, mock.Anything)
}

// --- ApplyPaymentChange ---

func (suite *GameServiceTestSuite) TestApplyPaymentChange_FirstTeamPaid_StaysPending() {
	ctx := context.Background()
	game := suite.pendingGame()
	ref := "transfer-123"
	updater := uuid.NewString()

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.MatchedBy(func(upd models.PaymentUpdate) bool {
		return upd.Team == models.TeamA && upd.Paid && upd.PaymentRef != nil &&
			*upd.PaymentRef == ref && upd.Status == nil
	}), int64(3)).Return(nil).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamA, true, &ref, updater)

	suite.Require().NoError(err)
	suite.True(updated.IsPaidTeamA)
	suite.False(updated.IsPaidTeamB)
	suite.Equal(models.GameStatusPending, updated.Status)
	suite.Equal(int64(4), updated.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_BothPaid_Completes() {
	ctx := context.Background()
	game := suite.pendingGame()
	game.IsPaidTeamA = true

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.MatchedBy(func(upd models.PaymentUpdate) bool {
		return upd.Team == models.TeamB && upd.Paid &&
			upd.Status != nil && *upd.Status == models.GameStatusCompleted
	}), game.Version).Return(nil).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamB, true, nil, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(models.GameStatusCompleted, updated.Status)
	suite.True(updated.IsPaidTeamA)
	suite.True(updated.IsPaidTeamB)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_RevokeOnCompleted_BackToPending() {
	ctx := context.Background()
	game := suite.pendingGame()
	game.IsPaidTeamA = true
	game.IsPaidTeamB = true
	game.Status = models.GameStatusCompleted

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.MatchedBy(func(upd models.PaymentUpdate) bool {
		return upd.Team == models.TeamA && !upd.Paid && upd.PaymentRef == nil &&
			upd.Status != nil && *upd.Status == models.GameStatusPending
	}), game.Version).Return(nil).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamA, false, nil, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(models.GameStatusPending, updated.Status)
	suite.False(updated.IsPaidTeamA)
	suite.Nil(updated.PaymentRefTeamA, "unpaying clears the stored reference")
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_CancelledStaysCancelled() {
	ctx := context.Background()
	game := suite.pendingGame()
	game.IsPaidTeamA = true
	game.Status = models.GameStatusCancelled

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.MatchedBy(func(upd models.PaymentUpdate) bool {
		// Even with both flags paid, status stays untouched.
		return upd.Team == models.TeamB && upd.Paid && upd.Status == nil
	}), game.Version).Return(nil).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamB, true, nil, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(models.GameStatusCancelled, updated.Status)
	suite.True(updated.IsPaidTeamA)
	suite.True(updated.IsPaidTeamB)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_ReferenceWithoutPaid_Rejected() {
	ctx := context.Background()
	ref := "transfer-123"

	updated, err := suite.service.ApplyPaymentChange(ctx, uuid.NewString(), models.TeamA, false, &ref, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindGameByID", mock.Anything, mock.Anything)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_EmptyReferenceTreatedAsAbsent() {
	ctx := context.Background()
	game := suite.pendingGame()
	empty := ""

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.MatchedBy(func(upd models.PaymentUpdate) bool {
		return !upd.Paid && upd.PaymentRef == nil
	}), game.Version).Return(nil).Once()

	_, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamA, false, &empty, uuid.NewString())

	suite.Require().NoError(err)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_UnknownTeam_Rejected() {
	ctx := context.Background()

	updated, err := suite.service.ApplyPaymentChange(ctx, uuid.NewString(), models.Team("C"), true, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_VersionRace_Conflict() {
	ctx := context.Background()
	game := suite.pendingGame()

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGamePayment", ctx, game.GameID, mock.AnythingOfType("models.PaymentUpdate"), game.Version).
		Return(apperrors.ErrConflict).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, game.GameID, models.TeamA, true, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *GameServiceTestSuite) TestApplyPaymentChange_GameNotFound() {
	ctx := context.Background()
	gameID := uuid.NewString()
	suite.mockRepo.On("FindGameByID", ctx, gameID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.ApplyPaymentChange(ctx, gameID, models.TeamA, true, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateGameStatus ---

func (suite *GameServiceTestSuite) TestUpdateGameStatus_ManualCancel() {
	ctx := context.Background()
	game := suite.pendingGame()
	updater := uuid.NewString()

	suite.mockRepo.On("FindGameByID", ctx, game.GameID).Return(game, nil).Once()
	suite.mockRepo.On("UpdateGameStatus", ctx, game.GameID, models.GameStatusCancelled, updater, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	updated, err := suite.service.UpdateGameStatus(ctx, game.GameID, models.GameStatusCancelled, updater)

	suite.Require().NoError(err)
	suite.Equal(models.GameStatusCancelled, updated.Status)
}

func (suite *GameServiceTestSuite) TestUpdateGameStatus_UnknownStatus_Rejected() {
	ctx := context.Background()

	updated, err := suite.service.UpdateGameStatus(ctx, uuid.NewString(), models.GameStatus("archived"), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateGameStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
