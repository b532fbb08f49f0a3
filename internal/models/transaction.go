package models

import "github.com/shopspring/decimal"

// TransactionType indicates whether a journal row is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// FloatTransaction is the database row for one float journal entry.
// Append-only; Seq is a bigserial assigned on insert.
type FloatTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	FloatID         string          `json:"floatID"`       // FK -> driver_floats
	DriverID        string          `json:"driverID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"` // Positive value
	Reason          string          `json:"reason"`
	ReferenceID     string          `json:"referenceID"` // Nullable; links to vp_disbursements
	CurrencyCode    string          `json:"currencyCode"`
	Notes           string          `json:"notes"` // Nullable
	Seq             int64           `json:"seq"`
	AuditFields
}
