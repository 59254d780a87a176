package services_test

import (
	"context"
	"testing"

	"github.com/planillasvb/planillas_backend/internal/apperrors"
	"github.com/planillasvb/planillas_backend/internal/core/services"
	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/planillasvb/planillas_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "arbitro@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Arbitro Principal",
	}
	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Email == req.Email && u.Role == models.RoleUser &&
			u.PasswordHash != "" && utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, user.PasswordHash, "password must be stored hashed")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "arbitro@example.com",
		Password:    "correct-horse-battery",
		DisplayName: "Arbitro Principal",
	}
	existing := &models.User{UserID: uuid.NewString(), Email: req.Email}
	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingGoogleAccount() {
	ctx := context.Background()
	googleID := "google-sub-123"
	existing := &models.User{UserID: uuid.NewString(), GoogleID: &googleID}
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, googleID, "a@example.com", "A")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingEmail() {
	ctx := context.Background()
	googleID := "google-sub-123"
	existing := &models.User{UserID: uuid.NewString(), Email: "a@example.com"}
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "a@example.com").Return(existing, nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.UserID == existing.UserID && u.GoogleID != nil && *u.GoogleID == googleID
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, googleID, "a@example.com", "A")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.Require().NotNil(user.GoogleID)
	suite.Equal(googleID, *user.GoogleID)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ProvisionsNewAccount() {
	ctx := context.Background()
	googleID := "google-sub-123"
	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == "" &&
			u.GoogleID != nil && *u.GoogleID == googleID && u.Role == models.RoleUser
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, googleID, "new@example.com", "Nuevo")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("Nuevo", user.DisplayName)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
