package services

import (
	"context"

	"github.com/acculab/vpledger/internal/core/domain"
	"github.com/acculab/vpledger/internal/dto"
)

// FloatReaderSvc defines read operations for driver floats.
type FloatReaderSvc interface {
	// GetFloat retrieves a single float by ID.
	GetFloat(ctx context.Context, floatID string) (*domain.DriverFloat, error)

	// ListFloats retrieves floats matching the given params, newest first.
	ListFloats(ctx context.Context, params dto.ListFloatsParams) ([]domain.DriverFloat, error)

	// ListActiveFloats retrieves all ACTIVE floats, optionally narrowed to one
	// driver.
	ListActiveFloats(ctx context.Context, driverID string) ([]domain.DriverFloat, error)
}

// FloatWriterSvc defines write operations for driver floats.
type FloatWriterSvc interface {
	// AllocateFloat creates a new ACTIVE float and its opening ALLOCATION
	// journal entry as one atomic unit.
	AllocateFloat(ctx context.Context, req dto.CreateFloatRequest, allocatedByUserID string) (*domain.DriverFloat, string, error)

	// CloseFloat transitions a float to CLOSED. Idempotent.
	CloseFloat(ctx context.Context, floatID string, requestingUserID string) error

	// RecordReturn credits unused cash back into a float.
	RecordReturn(ctx context.Context, floatID string, req dto.RecordReturnRequest, userID string) (*domain.FloatTransaction, error)

	// RecordRefund credits a refunded payment back into a float.
	RecordRefund(ctx context.Context, floatID string, req dto.RecordRefundRequest, userID string) (*domain.FloatTransaction, error)

	// RecordAdjustment appends a manual correction entry on either side of the
	// ledger. Debit adjustments are bounded by the remaining balance.
	RecordAdjustment(ctx context.Context, floatID string, req dto.RecordAdjustmentRequest, userID string) (*domain.FloatTransaction, error)
}

// FloatSvcFacade combines all float service interfaces.
type FloatSvcFacade interface {
	FloatReaderSvc
	FloatWriterSvc
}
