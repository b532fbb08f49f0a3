package repositories

import (
	"context"
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
)

// ListFloatsParams narrows a float listing.
type ListFloatsParams struct {
	DriverID string
	Status   *domain.FloatStatus
	Limit    int
	Offset   int
}

// FloatReader defines read operations for driver float data.
type FloatReader interface {
	// FindFloatByID retrieves a float by its unique identifier.
	FindFloatByID(ctx context.Context, floatID string) (*domain.DriverFloat, error)

	// FindLatestActiveFloatByDriver retrieves the most recently created ACTIVE
	// float for a driver, or ErrNotFound when the driver has none.
	FindLatestActiveFloatByDriver(ctx context.Context, driverID string) (*domain.DriverFloat, error)

	// ListFloats retrieves floats matching the given params, newest first.
	ListFloats(ctx context.Context, params ListFloatsParams) ([]domain.DriverFloat, error)

	// FindTransactionsByFloatID retrieves a float's full journal ordered by
	// (created_at, seq) ascending, in one consistent snapshot.
	FindTransactionsByFloatID(ctx context.Context, floatID string) ([]domain.FloatTransaction, error)
}

// FloatWriter defines write operations for driver float data.
type FloatWriter interface {
	// SaveFloatWithAllocation persists a new float together with its opening
	// ALLOCATION journal entry in one atomic unit.
	SaveFloatWithAllocation(ctx context.Context, float domain.DriverFloat, allocation domain.FloatTransaction) error

	// CloseFloat transitions a float to CLOSED. Idempotent: closing an already
	// closed float reports transitioned=false and changes nothing.
	CloseFloat(ctx context.Context, floatID string, userID string, now time.Time) (transitioned bool, err error)

	// ApplyJournalEntry appends a return/refund/adjustment entry and updates
	// the float's remaining balance in one atomic unit. The float row is
	// re-read under a row lock inside the same transaction; a debit that
	// exceeds the remaining balance fails with ErrInsufficientBalance and a
	// closed float fails with ErrFloatClosed. Returns the entry with its
	// store-assigned sequence.
	ApplyJournalEntry(ctx context.Context, entry domain.FloatTransaction) (*domain.FloatTransaction, error)
}

// FloatRepositoryFacade combines all float repository interfaces.
type FloatRepositoryFacade interface {
	FloatReader
	FloatWriter
}
