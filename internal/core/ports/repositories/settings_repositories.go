package repositories

import (
	"context"

	"github.com/acculab/vpledger/internal/core/domain"
)

// SettingsReader defines read operations for VP settings.
type SettingsReader interface {
	// FindLatestSettings returns the most recently created settings version,
	// or ErrNotFound when no version has ever been written.
	FindLatestSettings(ctx context.Context) (*domain.VPSettings, error)
}

// SettingsWriter defines write operations for VP settings.
type SettingsWriter interface {
	// SaveSettings appends a new settings version. Prior versions are never
	// mutated or deleted.
	SaveSettings(ctx context.Context, settings domain.VPSettings) error
}

// SettingsRepositoryFacade combines the settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
