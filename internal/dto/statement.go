package dto

import (
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementEntryResponse is one rendered line of a float statement.
type StatementEntryResponse struct {
	TransactionID  string          `json:"transactionID"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Reason         string          `json:"reason"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	SignedAmount   decimal.Decimal `json:"signedAmount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Notes          string          `json:"notes,omitempty"`
}

// StatementResponse is a full replay of one float's journal.
type StatementResponse struct {
	FloatID        string                   `json:"floatID"`
	DriverID       string                   `json:"driverID"`
	CurrencyCode   string                   `json:"currencyCode"`
	Entries        []StatementEntryResponse `json:"entries"`
	ClosingBalance decimal.Decimal          `json:"closingBalance"`
}

// StatementSliceResponse is a date-bounded statement window with its balance
// brought forward. BalanceBroughtForward is null for an empty journal.
type StatementSliceResponse struct {
	FloatID               string                   `json:"floatID"`
	From                  *time.Time               `json:"from,omitempty"`
	To                    *time.Time               `json:"to,omitempty"`
	BalanceBroughtForward *decimal.Decimal         `json:"balanceBroughtForward"`
	Entries               []StatementEntryResponse `json:"entries"`
}

// StatementQueryParams holds optional date bounds for slicing a statement.
type StatementQueryParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

func toStatementEntryResponses(entries []domain.StatementEntry) []StatementEntryResponse {
	responses := make([]StatementEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = StatementEntryResponse{
			TransactionID:  e.TransactionID,
			Date:           e.Date,
			Description:    e.Description,
			Reason:         string(e.Reason),
			Type:           string(e.Type),
			Amount:         e.Amount,
			SignedAmount:   e.SignedAmount,
			RunningBalance: e.RunningBalance,
			Notes:          e.Notes,
		}
	}
	return responses
}

// ToStatementResponse converts a domain.Statement to its DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		FloatID:        s.FloatID,
		DriverID:       s.DriverID,
		CurrencyCode:   s.CurrencyCode,
		Entries:        toStatementEntryResponses(s.Entries),
		ClosingBalance: s.ClosingBalance,
	}
}

// ToStatementSliceResponse converts a domain.StatementSlice to its DTO.
func ToStatementSliceResponse(s *domain.StatementSlice) StatementSliceResponse {
	return StatementSliceResponse{
		FloatID:               s.FloatID,
		From:                  s.From,
		To:                    s.To,
		BalanceBroughtForward: s.BalanceBroughtForward,
		Entries:               toStatementEntryResponses(s.Entries),
	}
}
