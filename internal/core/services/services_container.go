package services

import (
	"log/slog"

	"github.com/planillasvb/planillas_backend/internal/core/ports"
	"github.com/planillasvb/planillas_backend/internal/platform/config"
)

// Repositories groups the persistence dependencies the container needs.
type Repositories struct {
	Category  ports.CategoryRepository
	Court     ports.CourtRepository
	Game      ports.GameRepository
	User      ports.UserRepository
	Reporting ports.ReportingRepository
	RateCache ports.RateCacheRepository
}

// NewServiceContainer wires all application services.
func NewServiceContainer(cfg *config.Config, repos Repositories, rateSource ports.RateSource, logger *slog.Logger) *ports.ServiceContainer {
	container := &ports.ServiceContainer{}

	container.Category = NewCategoryService(repos.Category)
	container.Court = NewCourtService(repos.Court)
	container.Game = NewGameService(repos.Game, container.Category)
	container.Rate = NewRateService(repos.RateCache, rateSource, cfg.RateCacheTTL, logger)
	container.User = NewUserService(repos.User)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Reporting = NewReportingService(repos.Reporting)

	return container
}

// Compile-time interface checks.
var (
	_ ports.CategorySvcFacade  = (*CategoryService)(nil)
	_ ports.CourtSvcFacade     = (*CourtService)(nil)
	_ ports.GameSvcFacade      = (*GameService)(nil)
	_ ports.RateSvcFacade      = (*RateService)(nil)
	_ ports.UserSvcFacade      = (*UserService)(nil)
	_ ports.ReportingSvcFacade = (*ReportingService)(nil)
)
