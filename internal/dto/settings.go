package dto

import (
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines a new VP settings version to append.
type UpdateSettingsRequest struct {
	DefaultAmountPerSample decimal.Decimal `json:"defaultAmountPerSample" binding:"required"`
	CurrencyCode           string          `json:"currencyCode" binding:"required,currencycode"`
}

// SettingsResponse defines the data returned for the current VP settings.
type SettingsResponse struct {
	SettingsID             string          `json:"settingsID"`
	DefaultAmountPerSample decimal.Decimal `json:"defaultAmountPerSample"`
	CurrencyCode           string          `json:"currencyCode"`
	UpdatedByUserID        string          `json:"updatedByUserID"`
	CreatedAt              time.Time       `json:"createdAt"`
}

// ToSettingsResponse converts a domain.VPSettings to its DTO.
func ToSettingsResponse(s *domain.VPSettings) SettingsResponse {
	return SettingsResponse{
		SettingsID:             s.SettingsID,
		DefaultAmountPerSample: s.DefaultAmountPerSample,
		CurrencyCode:           s.CurrencyCode,
		UpdatedByUserID:        s.UpdatedByUserID,
		CreatedAt:              s.CreatedAt,
	}
}
