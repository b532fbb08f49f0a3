package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VPSettings is one version of the venepuncture payment configuration.
// Versions are append-only; the current value is the most recently created row.
type VPSettings struct {
	SettingsID             string          `json:"settingsID"` // Primary Key (UUID)
	DefaultAmountPerSample decimal.Decimal `json:"defaultAmountPerSample"`
	CurrencyCode           string          `json:"currencyCode"`
	UpdatedByUserID        string          `json:"updatedByUserID"`
	CreatedAt              time.Time       `json:"createdAt"`
}
