package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a journal entry is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// TransactionReason classifies why a journal entry exists.
type TransactionReason string

const (
	ReasonAllocation     TransactionReason = "ALLOCATION"
	ReasonVPDisbursement TransactionReason = "VP_DISBURSEMENT"
	ReasonAdjustment     TransactionReason = "ADJUSTMENT"
	ReasonReturn         TransactionReason = "RETURN"
	ReasonRefund         TransactionReason = "REFUND"
)

// reasonDirection fixes the balance direction per reason. Adjustments are the
// only reason whose direction follows the entry's own transaction type.
type reasonDirection int

const (
	directionCredit reasonDirection = iota
	directionDebit
	directionByType
)

// reasonDirections is the single classification table for journal replay.
// Every TransactionReason must have an entry here; SignedAmount fails loudly
// on anything missing rather than guessing.
var reasonDirections = map[TransactionReason]reasonDirection{
	ReasonAllocation:     directionCredit,
	ReasonVPDisbursement: directionDebit,
	ReasonAdjustment:     directionByType,
	ReasonReturn:         directionCredit,
	ReasonRefund:         directionCredit,
}

// FloatTransaction is one append-only journal entry against a driver float.
// The journal is the sole source of truth for balance history; rows are never
// updated or deleted. Seq is a monotonic insertion sequence assigned by the
// store and breaks created-at ties so replay is deterministic.
type FloatTransaction struct {
	TransactionID   string            `json:"transactionID"` // Primary Key (UUID)
	FloatID         string            `json:"floatID"`
	DriverID        string            `json:"driverID"`
	TransactionType TransactionType   `json:"transactionType"`
	Amount          decimal.Decimal   `json:"amount"` // Always positive
	Reason          TransactionReason `json:"reason"`
	ReferenceID     string            `json:"referenceID"` // Links debits to their disbursement
	CurrencyCode    string            `json:"currencyCode"`
	Notes           string            `json:"notes"`
	Seq             int64             `json:"seq"`
	AuditFields
}

// SignedAmount returns the entry's amount with the sign the reason table
// dictates: positive for credits into the float, negative for debits out of it.
func (t *FloatTransaction) SignedAmount() (decimal.Decimal, error) {
	dir, ok := reasonDirections[t.Reason]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown transaction reason %q for transaction %s", t.Reason, t.TransactionID)
	}
	if dir == directionByType {
		if t.TransactionType == Debit {
			dir = directionDebit
		} else {
			dir = directionCredit
		}
	}
	if dir == directionDebit {
		return t.Amount.Neg(), nil
	}
	return t.Amount, nil
}

// TypeForReason returns the transaction type a reason implies, or an error for
// reasons where the caller must choose (adjustments).
func TypeForReason(reason TransactionReason) (TransactionType, error) {
	dir, ok := reasonDirections[reason]
	if !ok {
		return "", fmt.Errorf("unknown transaction reason %q", reason)
	}
	switch dir {
	case directionCredit:
		return Credit, nil
	case directionDebit:
		return Debit, nil
	default:
		return "", fmt.Errorf("reason %q does not imply a transaction type", reason)
	}
}

// Occurred reports whether the entry falls inside the closed interval
// [start, end]; a nil bound leaves that side open.
func (t *FloatTransaction) Occurred(start, end *time.Time) bool {
	if start != nil && t.CreatedAt.Before(*start) {
		return false
	}
	if end != nil && t.CreatedAt.After(*end) {
		return false
	}
	return true
}
