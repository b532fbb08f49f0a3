package services

import (
	"context"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/acculab/vpledger/internal/dto"
)

// DisburseResult reports a committed disbursement along with the journal
// entry and float it debited.
type DisburseResult struct {
	Disbursement  domain.VPDisbursement
	TransactionID string
	FloatID       string
}

// DisbursementSvcFacade defines the venepuncture payment operations.
type DisbursementSvcFacade interface {
	// Disburse validates and atomically applies a payment debit against a
	// float. When req.FloatID is nil the driver's most recently created
	// ACTIVE float is used. Transient write conflicts are retried internally
	// a bounded number of times before surfacing as a dependency failure.
	Disburse(ctx context.Context, req dto.CreateDisbursementRequest, createdByUserID string) (*DisburseResult, error)

	// GetDisbursement retrieves a single disbursement by ID.
	GetDisbursement(ctx context.Context, disbursementID string) (*domain.VPDisbursement, error)

	// ListDisbursements retrieves a filtered page of disbursements.
	ListDisbursements(ctx context.Context, params dto.ListDisbursementsParams) (*dto.ListDisbursementsResponse, error)
}
