package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/dto"
	"github.com/acculab/vpledger/internal/middleware"
)

// settingsService maintains the append-only VP settings version log.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

// Ensure settingsService implements portssvc.SettingsSvcFacade
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// UpdateSettings appends a new settings version. Existing versions are never
// modified; readers always see the most recently created row.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updatedByUserID string) (*domain.VPSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.DefaultAmountPerSample.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: defaultAmountPerSample must be positive", apperrors.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currencyCode must be a 3-letter ISO code", apperrors.ErrValidation)
	}

	settings := &domain.VPSettings{
		SettingsID:             uuid.NewString(),
		DefaultAmountPerSample: req.DefaultAmountPerSample,
		CurrencyCode:           currency,
		UpdatedByUserID:        updatedByUserID,
		CreatedAt:              time.Now().UTC(),
	}

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		logger.Error("Failed to save settings version", slog.String("error", err.Error()))
		return nil, fmt.Errorf("update settings: %w", err)
	}

	logger.Info("Settings version appended",
		slog.String("settings_id", settings.SettingsID),
		slog.String("updated_by", updatedByUserID))
	return settings, nil
}

// GetSettings returns the most recently created settings version.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.VPSettings, error) {
	settings, err := s.settingsRepo.FindLatestSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}
