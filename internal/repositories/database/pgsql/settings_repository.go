package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	"github.com/acculab/vpledger/internal/models"
	"github.com/acculab/vpledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the VP settings
// version log.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// SaveSettings appends a new settings version. The table is append-only; no
// update path exists.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.VPSettings) error {
	query := `
		INSERT INTO vp_settings (settings_id, default_amount_per_sample, currency_code, updated_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.SettingsID,
		settings.DefaultAmountPerSample,
		settings.CurrencyCode,
		settings.UpdatedByUserID,
		settings.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("settings %s: %w", settings.SettingsID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert settings version "+settings.SettingsID, err)
	}
	return nil
}

// FindLatestSettings returns the most recently created settings version.
func (r *PgxSettingsRepository) FindLatestSettings(ctx context.Context) (*domain.VPSettings, error) {
	query := `
		SELECT settings_id, default_amount_per_sample, currency_code, updated_by_user_id, created_at
		FROM vp_settings
		ORDER BY created_at DESC, settings_id DESC
		LIMIT 1;
	`
	var m models.VPSettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.SettingsID,
		&m.DefaultAmountPerSample,
		&m.CurrencyCode,
		&m.UpdatedByUserID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vp settings: %w", apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to query latest settings", err)
	}

	settings := mapping.ToDomainVPSettings(m)
	return &settings, nil
}
