package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VPDisbursement is the database row for a venepuncture payment.
type VPDisbursement struct {
	DisbursementID string          `json:"disbursementID"` // Primary Key (UUID)
	SampleID       string          `json:"sampleID"`
	NurseID        string          `json:"nurseID"`
	NurseName      string          `json:"nurseName"`
	DriverID       string          `json:"driverID"`
	DriverName     string          `json:"driverName"`
	FloatID        string          `json:"floatID"` // FK -> driver_floats
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes"` // Nullable
	DisbursedAt    time.Time       `json:"disbursedAt"`
	AuditFields
}
