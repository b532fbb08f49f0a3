package domain

import "github.com/shopspring/decimal"

// FloatStatus indicates the lifecycle state of a driver float.
type FloatStatus string

const (
	FloatActive FloatStatus = "ACTIVE"
	FloatClosed FloatStatus = "CLOSED"
)

// DriverFloat represents a cash pool allocated to a driver for field disbursements.
// AllocatedAmount is fixed at creation; RemainingBalance is the only mutable
// money field and must always equal AllocatedAmount plus the signed sum of the
// float's journal entries.
type DriverFloat struct {
	FloatID          string          `json:"floatID"` // Primary Key (UUID)
	DriverID         string          `json:"driverID"`
	DriverName       string          `json:"driverName"`
	AllocatedAmount  decimal.Decimal `json:"allocatedAmount"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	CurrencyCode     string          `json:"currencyCode"`
	Status           FloatStatus     `json:"status"`
	Notes            string          `json:"notes"`
	AuditFields
}

// IsActive reports whether the float can still accept disbursements.
func (f *DriverFloat) IsActive() bool {
	return f.Status == FloatActive
}
