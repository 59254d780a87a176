package ports

import (
	"context"
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
)

// Note: Context is included on every method for cancellation/timeouts.

// CategoryRepository defines persistence operations for fee categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category models.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// GameRepository defines persistence operations for games and their
// fee sheets.
type GameRepository interface {
	SaveGame(ctx context.Context, game models.Game) error
	FindGameByID(ctx context.Context, gameID string) (*models.Game, error)
	// ListGames returns games ordered by date descending. from/to are
	// optional date-range bounds (inclusive); courtID filters when
	// non-empty.
	ListGames(ctx context.Context, courtID string, from, to *time.Time) ([]models.Game, error)
	UpdateGame(ctx context.Context, game models.Game) error
	// UpdateGamePayment applies a partial payment update conditioned on
	// the row's current version. Returns apperrors.ErrNotFound when the
	// game no longer exists and apperrors.ErrConflict when the version
	// check fails.
	UpdateGamePayment(ctx context.Context, gameID string, upd models.PaymentUpdate, expectedVersion int64) error
	UpdateGameStatus(ctx context.Context, gameID string, status models.GameStatus, updatedBy string, updatedAt time.Time) error
	DeleteGame(ctx context.Context, gameID string) error
}

// CourtRepository defines persistence operations for courts.
type CourtRepository interface {
	SaveCourt(ctx context.Context, court models.Court) error
	FindCourtByID(ctx context.Context, courtID string) (*models.Court, error)
	ListCourts(ctx context.Context) ([]models.Court, error)
	UpdateCourt(ctx context.Context, court models.Court) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
}

// DailyFeeTotals is one row of the dashboard report.
type DailyFeeTotals struct {
	Day            time.Time
	GamesPlayed    int
	FeesChargedUSD string // decimal string, summed in SQL
	FeesPaidUSD    string
}

// ReportingRepository aggregates fee totals straight in the database.
type ReportingRepository interface {
	DailyTotals(ctx context.Context, from, to time.Time) ([]DailyFeeTotals, error)
}

// RateCacheRepository owns the persisted CachedRateEntry. FindEntry
// returns apperrors.ErrNotFound when no entry has ever been stored.
type RateCacheRepository interface {
	FindEntry(ctx context.Context) (*models.CachedRateEntry, error)
	SaveEntry(ctx context.Context, entry models.CachedRateEntry) error
}

// RateSource fetches the current VES/USD rate from the upstream API.
// Implementations must return an error for non-2xx responses and
// unparseable bodies; value validation is the service's concern.
type RateSource interface {
	FetchRate(ctx context.Context) (*models.CachedRateEntry, error)
}
