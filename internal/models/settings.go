package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VPSettings is one append-only row of the vp_settings version log.
type VPSettings struct {
	SettingsID             string          `json:"settingsID"` // Primary Key (UUID)
	DefaultAmountPerSample decimal.Decimal `json:"defaultAmountPerSample"`
	CurrencyCode           string          `json:"currencyCode"`
	UpdatedByUserID        string          `json:"updatedByUserID"`
	CreatedAt              time.Time       `json:"createdAt"`
}
