package pgsql

import (
	"github.com/planillasvb/planillas_backend/internal/core/services"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositories wires all Postgres-backed repositories. The rate
// cache lives in Redis and is attached by the caller.
func NewRepositories(dbPool *pgxpool.Pool) services.Repositories {
	return services.Repositories{
		Category:  NewCategoryRepository(dbPool),
		Court:     NewCourtRepository(dbPool),
		Game:      NewGameRepository(dbPool),
		User:      NewUserRepository(dbPool),
		Reporting: NewReportingRepository(dbPool),
	}
}
