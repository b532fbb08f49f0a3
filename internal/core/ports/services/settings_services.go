package services

import (
	"context"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/acculab/vpledger/internal/dto"
)

// SettingsSvcFacade manages the append-only VP settings version log.
type SettingsSvcFacade interface {
	// UpdateSettings appends a new settings version; prior versions stay
	// untouched for audit.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updatedByUserID string) (*domain.VPSettings, error)

	// GetSettings returns the most recently created version, or ErrNotFound
	// when none exist yet.
	GetSettings(ctx context.Context) (*domain.VPSettings, error)
}
