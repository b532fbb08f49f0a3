package repositories

import (
	"context"
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
)

// ListDisbursementsParams narrows a disbursement listing. Time bounds are
// inclusive; nil leaves that side open.
type ListDisbursementsParams struct {
	DriverID  string
	NurseID   string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// DisbursementReader defines read operations for disbursement data.
type DisbursementReader interface {
	// FindDisbursementByID retrieves a disbursement by its unique identifier.
	FindDisbursementByID(ctx context.Context, disbursementID string) (*domain.VPDisbursement, error)

	// FindDisbursementsByIDs retrieves multiple disbursements keyed by ID.
	// IDs with no matching row are simply absent from the map.
	FindDisbursementsByIDs(ctx context.Context, disbursementIDs []string) (map[string]domain.VPDisbursement, error)

	// ListDisbursements retrieves a page of disbursements matching the params,
	// newest first, with a token for the next page.
	ListDisbursements(ctx context.Context, params ListDisbursementsParams) ([]domain.VPDisbursement, *string, error)
}

// DisbursementWriter defines write operations for disbursement data.
type DisbursementWriter interface {
	// ApplyDisbursement executes the whole disbursement unit atomically: it
	// re-reads the target float under a row lock inside the same transaction,
	// validates status and balance, inserts the disbursement, appends its
	// DEBIT/VP_DISBURSEMENT journal entry and decrements the remaining
	// balance. Either everything commits or nothing does.
	//
	// Failure modes: ErrFloatClosed, ErrInsufficientBalance (terminal),
	// ErrConflict (lost a write race, retryable), ErrNotFound (unknown float).
	// Returns the journal entry with its store-assigned sequence.
	ApplyDisbursement(ctx context.Context, d domain.VPDisbursement, entry domain.FloatTransaction) (*domain.FloatTransaction, error)
}

// DisbursementRepositoryFacade combines all disbursement repository interfaces.
type DisbursementRepositoryFacade interface {
	DisbursementReader
	DisbursementWriter
}
