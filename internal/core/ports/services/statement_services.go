package services

import (
	"context"
	"time"

	"github.com/acculab/vpledger/internal/core/domain"
)

// StatementSvcFacade reconstructs bank-statement-style views of a float's
// journal.
type StatementSvcFacade interface {
	// GetStatement replays the float's full journal into an ordered statement
	// with running balances.
	GetStatement(ctx context.Context, floatID string) (*domain.Statement, error)

	// SliceStatement returns the entries within [from, to] plus the balance
	// brought forward from before the window. Nil bounds leave that side open.
	SliceStatement(ctx context.Context, floatID string, from, to *time.Time) (*domain.StatementSlice, error)
}
