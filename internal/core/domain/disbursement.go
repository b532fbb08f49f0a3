package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VPDisbursement is a venepuncture payment to a nurse, debited from a driver's
// float. Created once, immutable thereafter.
type VPDisbursement struct {
	DisbursementID string          `json:"disbursementID"` // Primary Key (UUID)
	SampleID       string          `json:"sampleID"`
	NurseID        string          `json:"nurseID"`
	NurseName      string          `json:"nurseName"`
	DriverID       string          `json:"driverID"`
	DriverName     string          `json:"driverName"`
	FloatID        string          `json:"floatID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes"`
	DisbursedAt    time.Time       `json:"disbursedAt"`
	AuditFields
}
