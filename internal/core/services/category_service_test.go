package services_test

import (
	"context"
	"testing"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/services"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  *services.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCategoryRequest{
		Name:         "Sub-17",
		PricePerTeam: decimal.NewFromInt(15),
	}
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("models.Category")).Return(nil).Once()

	cat, err := suite.service.CreateCategory(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(cat.CategoryID)
	suite.Equal("Sub-17", cat.Name)
	suite.True(cat.PricePerTeam.Equal(decimal.NewFromInt(15)))
	suite.Equal(creatorUserID, cat.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_NonPositivePrice_Rejected() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name:         "Sub-17",
		PricePerTeam: decimal.Zero,
	}

	cat, err := suite.service.CreateCategory(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryByID_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	cat, err := suite.service.GetCategoryByID(ctx, categoryID)

	suite.Require().Error(err)
	suite.Nil(cat)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return([]models.Category(nil), nil).Once()

	cats, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(cats)
	suite.Empty(cats)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Success() {
	ctx := context.Background()
	existing := &models.Category{
		CategoryID:   uuid.NewString(),
		Name:         "Sub-17",
		PricePerTeam: decimal.NewFromInt(15),
	}
	req := dto.UpdateCategoryRequest{
		Name:         "Sub-19",
		PricePerTeam: decimal.NewFromInt(20),
	}
	updater := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, existing.CategoryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(cat models.Category) bool {
		return cat.Name == "Sub-19" && cat.PricePerTeam.Equal(decimal.NewFromInt(20)) &&
			cat.LastUpdatedBy == updater
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, existing.CategoryID, req, updater)

	suite.Require().NoError(err)
	suite.Equal("Sub-19", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
