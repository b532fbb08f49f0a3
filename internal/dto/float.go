package dto

import (
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFloatRequest defines the data needed to allocate a new driver float.
type CreateFloatRequest struct {
	DriverID     string          `json:"driverID" binding:"required"`
	DriverName   string          `json:"driverName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Notes        string          `json:"notes"` // Optional
}

// FloatResponse defines the data returned for a driver float.
type FloatResponse struct {
	FloatID          string          `json:"floatID"`
	DriverID         string          `json:"driverID"`
	DriverName       string          `json:"driverName"`
	AllocatedAmount  decimal.Decimal `json:"allocatedAmount"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	CurrencyCode     string          `json:"currencyCode"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// AllocateFloatResponse pairs the new float with its opening journal entry.
type AllocateFloatResponse struct {
	Float         FloatResponse `json:"float"`
	TransactionID string        `json:"transactionID"`
}

// ListFloatsParams holds query parameters for listing floats.
type ListFloatsParams struct {
	DriverID string `form:"driverID"`
	Status   string `form:"status" binding:"omitempty,oneof=ACTIVE CLOSED"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// RecordReturnRequest defines a cash return credited back into a float.
type RecordReturnRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// RecordRefundRequest defines a refund credited back into a float.
type RecordRefundRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// RecordAdjustmentRequest defines a manual correction entry. Type picks the
// side; debits are bounded by the float's remaining balance.
type RecordAdjustmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Type   string          `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Notes  string          `json:"notes"`
}

// TransactionResponse defines the data returned for a float journal entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	FloatID       string          `json:"floatID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToFloatResponse converts a domain.DriverFloat to FloatResponse DTO.
func ToFloatResponse(f *domain.DriverFloat) FloatResponse {
	return FloatResponse{
		FloatID:          f.FloatID,
		DriverID:         f.DriverID,
		DriverName:       f.DriverName,
		AllocatedAmount:  f.AllocatedAmount,
		RemainingBalance: f.RemainingBalance,
		CurrencyCode:     f.CurrencyCode,
		Status:           string(f.Status),
		Notes:            f.Notes,
		CreatedAt:        f.CreatedAt,
		CreatedBy:        f.CreatedBy,
		LastUpdatedAt:    f.LastUpdatedAt,
		LastUpdatedBy:    f.LastUpdatedBy,
	}
}

// ToFloatResponses converts a slice of domain.DriverFloat to DTOs.
func ToFloatResponses(floats []domain.DriverFloat) []FloatResponse {
	responses := make([]FloatResponse, len(floats))
	for i := range floats {
		responses[i] = ToFloatResponse(&floats[i])
	}
	return responses
}

// ToTransactionResponse converts a domain.FloatTransaction to its DTO.
func ToTransactionResponse(txn *domain.FloatTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		FloatID:       txn.FloatID,
		Type:          string(txn.TransactionType),
		Amount:        txn.Amount,
		Reason:        string(txn.Reason),
		ReferenceID:   txn.ReferenceID,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}
