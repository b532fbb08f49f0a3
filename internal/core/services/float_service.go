package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/dto"
	"github.com/acculab/vpledger/internal/middleware"
)

// floatService provides driver float allocation and journal operations.
type floatService struct {
	floatRepo    portsrepo.FloatRepositoryFacade
	maxRetries   int
	retryBackoff time.Duration
}

// NewFloatService creates a new FloatService.
func NewFloatService(floatRepo portsrepo.FloatRepositoryFacade, maxRetries int, retryBackoff time.Duration) portssvc.FloatSvcFacade {
	return &floatService{
		floatRepo:    floatRepo,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
	}
}

// Ensure floatService implements the portssvc.FloatSvcFacade interface
var _ portssvc.FloatSvcFacade = (*floatService)(nil)

// AllocateFloat creates a new float and its opening allocation entry.
// Implements portssvc.FloatWriterSvc
func (s *floatService) AllocateFloat(ctx context.Context, req dto.CreateFloatRequest, allocatedByUserID string) (*domain.DriverFloat, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, "", fmt.Errorf("%w: allocate: amount must be positive for driver %s", apperrors.ErrValidation, req.DriverID)
	}
	currency := strings.ToUpper(req.CurrencyCode)
	if len(currency) != 3 {
		return nil, "", fmt.Errorf("%w: allocate: currency code must be 3 letters", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	floatID := uuid.NewString()
	transactionID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     allocatedByUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: allocatedByUserID,
	}

	float := domain.DriverFloat{
		FloatID:          floatID,
		DriverID:         req.DriverID,
		DriverName:       req.DriverName,
		AllocatedAmount:  req.Amount,
		RemainingBalance: req.Amount,
		CurrencyCode:     currency,
		Status:           domain.FloatActive,
		Notes:            req.Notes,
		AuditFields:      audit,
	}

	allocation := domain.FloatTransaction{
		TransactionID:   transactionID,
		FloatID:         floatID,
		DriverID:        req.DriverID,
		TransactionType: domain.Credit,
		Amount:          req.Amount,
		Reason:          domain.ReasonAllocation,
		CurrencyCode:    currency,
		Notes:           req.Notes,
		AuditFields:     audit,
	}

	if err := s.floatRepo.SaveFloatWithAllocation(ctx, float, allocation); err != nil {
		logger.Error("Failed to save float allocation", slog.String("error", err.Error()), slog.String("driver_id", req.DriverID))
		return nil, "", fmt.Errorf("allocate: failed to save float for driver %s: %w", req.DriverID, err)
	}

	logger.Info("Float allocated", slog.String("float_id", floatID), slog.String("driver_id", req.DriverID), slog.String("amount", req.Amount.String()))
	return &float, transactionID, nil
}

// CloseFloat transitions a float to CLOSED. Calling it on an already closed
// float is a no-op; the journal is never touched.
// Implements portssvc.FloatWriterSvc
func (s *floatService) CloseFloat(ctx context.Context, floatID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	transitioned, err := s.floatRepo.CloseFloat(ctx, floatID, requestingUserID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to close float", slog.String("error", err.Error()), slog.String("float_id", floatID))
		}
		return fmt.Errorf("close: float %s: %w", floatID, err)
	}

	if !transitioned {
		logger.Debug("Float already closed", slog.String("float_id", floatID))
		return nil
	}

	logger.Info("Float closed", slog.String("float_id", floatID))
	return nil
}

// GetFloat retrieves a single float by ID.
// Implements portssvc.FloatReaderSvc
func (s *floatService) GetFloat(ctx context.Context, floatID string) (*domain.DriverFloat, error) {
	float, err := s.floatRepo.FindFloatByID(ctx, floatID)
	if err != nil {
		return nil, fmt.Errorf("get: float %s: %w", floatID, err)
	}
	return float, nil
}

// ListFloats retrieves floats matching the given params.
// Implements portssvc.FloatReaderSvc
func (s *floatService) ListFloats(ctx context.Context, params dto.ListFloatsParams) ([]domain.DriverFloat, error) {
	repoParams := portsrepo.ListFloatsParams{
		DriverID: params.DriverID,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.Status != "" {
		status := domain.FloatStatus(params.Status)
		repoParams.Status = &status
	}

	floats, err := s.floatRepo.ListFloats(ctx, repoParams)
	if err != nil {
		return nil, fmt.Errorf("list floats: %w", err)
	}
	return floats, nil
}

// ListActiveFloats retrieves all ACTIVE floats, optionally for one driver.
// Implements portssvc.FloatReaderSvc
func (s *floatService) ListActiveFloats(ctx context.Context, driverID string) ([]domain.DriverFloat, error) {
	status := domain.FloatActive
	floats, err := s.floatRepo.ListFloats(ctx, portsrepo.ListFloatsParams{
		DriverID: driverID,
		Status:   &status,
	})
	if err != nil {
		return nil, fmt.Errorf("list active floats: %w", err)
	}
	return floats, nil
}

// RecordReturn credits unused cash back into a float.
// Implements portssvc.FloatWriterSvc
func (s *floatService) RecordReturn(ctx context.Context, floatID string, req dto.RecordReturnRequest, userID string) (*domain.FloatTransaction, error) {
	return s.appendEntry(ctx, floatID, domain.ReasonReturn, domain.Credit, req.Amount, req.Notes, userID)
}

// RecordRefund credits a refunded payment back into a float.
// Implements portssvc.FloatWriterSvc
func (s *floatService) RecordRefund(ctx context.Context, floatID string, req dto.RecordRefundRequest, userID string) (*domain.FloatTransaction, error) {
	return s.appendEntry(ctx, floatID, domain.ReasonRefund, domain.Credit, req.Amount, req.Notes, userID)
}

// RecordAdjustment appends a manual correction entry. The request picks the
// side; debit adjustments fail when they exceed the remaining balance.
// Implements portssvc.FloatWriterSvc
func (s *floatService) RecordAdjustment(ctx context.Context, floatID string, req dto.RecordAdjustmentRequest, userID string) (*domain.FloatTransaction, error) {
	txnType := domain.TransactionType(req.Type)
	if txnType != domain.Debit && txnType != domain.Credit {
		return nil, fmt.Errorf("%w: adjustment: type must be DEBIT or CREDIT for float %s", apperrors.ErrValidation, floatID)
	}
	return s.appendEntry(ctx, floatID, domain.ReasonAdjustment, txnType, req.Amount, req.Notes, userID)
}

// appendEntry builds a journal entry and applies it through the repository's
// locked read-validate-write path, retrying transient conflicts.
func (s *floatService) appendEntry(ctx context.Context, floatID string, reason domain.TransactionReason, txnType domain.TransactionType, amount decimal.Decimal, notes string, userID string) (*domain.FloatTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s: amount must be positive for float %s", apperrors.ErrValidation, strings.ToLower(string(reason)), floatID)
	}

	float, err := s.floatRepo.FindFloatByID(ctx, floatID)
	if err != nil {
		return nil, fmt.Errorf("%s: float %s: %w", strings.ToLower(string(reason)), floatID, err)
	}

	now := time.Now().UTC()
	entry := domain.FloatTransaction{
		TransactionID:   uuid.NewString(),
		FloatID:         floatID,
		DriverID:        float.DriverID,
		TransactionType: txnType,
		Amount:          amount,
		Reason:          reason,
		CurrencyCode:    float.CurrencyCode,
		Notes:           notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var applied *domain.FloatTransaction
	err = retryOnConflict(ctx, s.maxRetries, s.retryBackoff, func() error {
		var applyErr error
		applied, applyErr = s.floatRepo.ApplyJournalEntry(ctx, entry)
		return applyErr
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientBalance) && !errors.Is(err, apperrors.ErrFloatClosed) {
			logger.Error("Failed to append journal entry", slog.String("error", err.Error()), slog.String("float_id", floatID), slog.String("reason", string(reason)))
		}
		return nil, fmt.Errorf("%s: float %s: %w", strings.ToLower(string(reason)), floatID, err)
	}

	logger.Info("Journal entry recorded",
		slog.String("float_id", floatID),
		slog.String("transaction_id", applied.TransactionID),
		slog.String("reason", string(reason)),
		slog.String("amount", amount.String()),
	)
	return applied, nil
}
