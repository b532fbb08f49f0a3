package pgsql

import (
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	floatRepo := newPgxFloatRepository(dbPool)
	disbursementRepo := newPgxDisbursementRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		FloatRepo:        floatRepo,
		DisbursementRepo: disbursementRepo,
		SettingsRepo:     settingsRepo,
	}
}
