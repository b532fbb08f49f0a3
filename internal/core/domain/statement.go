package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementEntry is one line of a reconstructed float statement: a journal
// entry plus the running balance after replaying it.
type StatementEntry struct {
	TransactionID  string            `json:"transactionID"`
	Date           time.Time         `json:"date"`
	Description    string            `json:"description"`
	Reason         TransactionReason `json:"reason"`
	Type           TransactionType   `json:"type"`
	Amount         decimal.Decimal   `json:"amount"`       // Always positive
	SignedAmount   decimal.Decimal   `json:"signedAmount"` // Amount with replay sign applied
	RunningBalance decimal.Decimal   `json:"runningBalance"`
	ReferenceID    string            `json:"referenceID,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

// Statement is a full replay of one float's journal.
type Statement struct {
	FloatID      string           `json:"floatID"`
	DriverID     string           `json:"driverID"`
	CurrencyCode string           `json:"currencyCode"`
	Entries      []StatementEntry `json:"entries"`
	// ClosingBalance is the running balance after the last entry; zero for an
	// empty journal.
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// StatementSlice is a date-bounded window of a statement, bank-statement
// style. BalanceBroughtForward is nil only when the underlying journal has no
// entries at all; it is zero when entries exist but none precede the window.
type StatementSlice struct {
	FloatID               string           `json:"floatID"`
	From                  *time.Time       `json:"from,omitempty"`
	To                    *time.Time       `json:"to,omitempty"`
	BalanceBroughtForward *decimal.Decimal `json:"balanceBroughtForward"`
	Entries               []StatementEntry `json:"entries"`
}
