package ports

import (
	"context"
	"time"

	"github.com/planillasvb/planillas_backend/internal/dto"
	"github.com/planillasvb/planillas_backend/internal/models"
)

// CategorySvcFacade exposes fee-category operations to the handlers.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CourtSvcFacade exposes court catalog operations.
type CourtSvcFacade interface {
	CreateCourt(ctx context.Context, req dto.CreateCourtRequest, creatorUserID string) (*models.Court, error)
	GetCourtByID(ctx context.Context, courtID string) (*models.Court, error)
	ListCourts(ctx context.Context) ([]models.Court, error)
	UpdateCourt(ctx context.Context, courtID string, req dto.UpdateCourtRequest, updaterUserID string) (*models.Court, error)
}

// GameSvcFacade exposes game scheduling and the fee-sheet payment
// operations.
type GameSvcFacade interface {
	CreateGame(ctx context.Context, req dto.CreateGameRequest, creatorUserID string) (*models.Game, error)
	GetGameByID(ctx context.Context, gameID string) (*models.Game, error)
	ListGames(ctx context.Context, courtID string, from, to *time.Time) ([]models.Game, error)
	UpdateGame(ctx context.Context, gameID string, req dto.UpdateGameRequest, updaterUserID string) (*models.Game, error)
	UpdateGameStatus(ctx context.Context, gameID string, status models.GameStatus, updaterUserID string) (*models.Game, error)
	// ApplyPaymentChange toggles one team's paid flag and derives the
	// resulting game status. reference must be nil unless paid is true.
	ApplyPaymentChange(ctx context.Context, gameID string, team models.Team, paid bool, reference *string, updaterUserID string) (*models.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// RateSvcFacade serves the best-effort VES/USD exchange rate.
type RateSvcFacade interface {
	GetRate(ctx context.Context) (*models.ExchangeRate, error)
}

// UserSvcFacade exposes user account operations.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindOrCreateGoogleUser links or provisions an account from a
	// verified Google identity.
	FindOrCreateGoogleUser(ctx context.Context, googleID, email, displayName string) (*models.User, error)
}

// TokenSvcFacade issues JWT access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *models.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetLoginURL(ctx context.Context, state string) string
	// ExchangeAndVerify exchanges an authorization code and returns the
	// verified identity (googleID, email, displayName).
	ExchangeAndVerify(ctx context.Context, code string) (googleID, email, displayName string, err error)
	// VerifyIDToken validates a Google ID token obtained client-side.
	VerifyIDToken(ctx context.Context, idToken string) (googleID, email, displayName string, err error)
}

// ReportingSvcFacade computes dashboard fee totals.
type ReportingSvcFacade interface {
	DailyTotals(ctx context.Context, from, to time.Time) (*dto.DailyTotalsResponse, error)
}

// ServiceContainer holds instances of all application services and is
// the handlers' single entry point into the core.
type ServiceContainer struct {
	Category    CategorySvcFacade
	Court       CourtSvcFacade
	Game        GameSvcFacade
	Rate        RateSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Reporting   ReportingSvcFacade
}
