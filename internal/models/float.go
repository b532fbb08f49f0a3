package models

import "github.com/shopspring/decimal"

// FloatStatus mirrors the driver_floats.status column.
type FloatStatus string

const (
	FloatActive FloatStatus = "ACTIVE"
	FloatClosed FloatStatus = "CLOSED"
)

// DriverFloat is the database row for a driver's cash float.
type DriverFloat struct {
	FloatID          string          `json:"floatID"` // Primary Key (UUID)
	DriverID         string          `json:"driverID"`
	DriverName       string          `json:"driverName"`
	AllocatedAmount  decimal.Decimal `json:"allocatedAmount"` // Fixed at creation
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	CurrencyCode     string          `json:"currencyCode"`
	Status           FloatStatus     `json:"status"`
	Notes            string          `json:"notes"`
	AuditFields
}
