package dto

import (
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDisbursementRequest defines the data needed to pay a nurse for a
// venepuncture. FloatID is optional; when omitted the driver's most recent
// active float is debited.
type CreateDisbursementRequest struct {
	SampleID     string          `json:"sampleID" binding:"required"`
	NurseID      string          `json:"nurseID" binding:"required"`
	NurseName    string          `json:"nurseName" binding:"required"`
	DriverID     string          `json:"driverID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Notes        string          `json:"notes"`   // Optional
	FloatID      *string         `json:"floatID"` // Optional, use pointer for nullability
}

// DisbursementResponse defines the data returned for a disbursement.
type DisbursementResponse struct {
	DisbursementID string          `json:"disbursementID"`
	SampleID       string          `json:"sampleID"`
	NurseID        string          `json:"nurseID"`
	NurseName      string          `json:"nurseName"`
	DriverID       string          `json:"driverID"`
	DriverName     string          `json:"driverName"`
	FloatID        string          `json:"floatID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Notes          string          `json:"notes,omitempty"`
	DisbursedAt    time.Time       `json:"disbursedAt"`
	CreatedBy      string          `json:"createdBy"`
}

// CreateDisbursementResponse pairs the disbursement with the journal entry
// that debited the float.
type CreateDisbursementResponse struct {
	Disbursement  DisbursementResponse `json:"disbursement"`
	TransactionID string               `json:"transactionID"`
	FloatID       string               `json:"floatID"`
}

// ListDisbursementsParams holds query parameters for listing disbursements.
// From/To are inclusive RFC3339 bounds on disbursedAt.
type ListDisbursementsParams struct {
	DriverID  string     `form:"driverID"`
	NurseID   string     `form:"nurseID"`
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// ListDisbursementsResponse is a page of disbursements plus the token for the
// next page, if any.
type ListDisbursementsResponse struct {
	Disbursements []DisbursementResponse `json:"disbursements"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ToDisbursementResponse converts a domain.VPDisbursement to its DTO.
func ToDisbursementResponse(d *domain.VPDisbursement) DisbursementResponse {
	return DisbursementResponse{
		DisbursementID: d.DisbursementID,
		SampleID:       d.SampleID,
		NurseID:        d.NurseID,
		NurseName:      d.NurseName,
		DriverID:       d.DriverID,
		DriverName:     d.DriverName,
		FloatID:        d.FloatID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Notes:          d.Notes,
		DisbursedAt:    d.DisbursedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDisbursementResponses converts a slice of domain.VPDisbursement to DTOs.
func ToDisbursementResponses(ds []domain.VPDisbursement) []DisbursementResponse {
	responses := make([]DisbursementResponse, len(ds))
	for i := range ds {
		responses[i] = ToDisbursementResponse(&ds[i])
	}
	return responses
}
