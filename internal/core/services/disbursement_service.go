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

// disbursementService validates and atomically applies venepuncture payments
// against driver floats.
type disbursementService struct {
	disbursementRepo portsrepo.DisbursementRepositoryFacade
	floatRepo        portsrepo.FloatReader
	maxRetries       int
	retryBackoff     time.Duration
}

// NewDisbursementService creates a new DisbursementService.
func NewDisbursementService(disbursementRepo portsrepo.DisbursementRepositoryFacade, floatRepo portsrepo.FloatReader, maxRetries int, retryBackoff time.Duration) portssvc.DisbursementSvcFacade {
	return &disbursementService{
		disbursementRepo: disbursementRepo,
		floatRepo:        floatRepo,
		maxRetries:       maxRetries,
		retryBackoff:     retryBackoff,
	}
}

// Ensure disbursementService implements portssvc.DisbursementSvcFacade
var _ portssvc.DisbursementSvcFacade = (*disbursementService)(nil)

// Disburse pays a nurse for a venepuncture out of a driver's float.
//
// Float resolution happens up front, but the status and balance checks are
// repeated by the repository under a row lock inside the committing
// transaction, so two racing disbursements against the same float can never
// both pass validation against a stale balance. Transient write conflicts are
// retried with backoff; terminal state errors propagate verbatim.
func (s *disbursementService) Disburse(ctx context.Context, req dto.CreateDisbursementRequest, createdByUserID string) (*portssvc.DisburseResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: disburse: amount must be positive for sample %s", apperrors.ErrValidation, req.SampleID)
	}
	currency := strings.ToUpper(req.CurrencyCode)

	float, err := s.resolveFloat(ctx, req)
	if err != nil {
		return nil, err
	}

	if float.CurrencyCode != currency {
		return nil, fmt.Errorf("%w: disburse: float %s holds %s, not %s", apperrors.ErrValidation, float.FloatID, float.CurrencyCode, currency)
	}

	now := time.Now().UTC()
	disbursementID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     createdByUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: createdByUserID,
	}

	disbursement := domain.VPDisbursement{
		DisbursementID: disbursementID,
		SampleID:       req.SampleID,
		NurseID:        req.NurseID,
		NurseName:      req.NurseName,
		DriverID:       req.DriverID,
		DriverName:     float.DriverName,
		FloatID:        float.FloatID,
		Amount:         req.Amount,
		CurrencyCode:   currency,
		Notes:          req.Notes,
		DisbursedAt:    now,
		AuditFields:    audit,
	}

	entry := domain.FloatTransaction{
		TransactionID:   uuid.NewString(),
		FloatID:         float.FloatID,
		DriverID:        req.DriverID,
		TransactionType: domain.Debit,
		Amount:          req.Amount,
		Reason:          domain.ReasonVPDisbursement,
		ReferenceID:     disbursementID,
		CurrencyCode:    currency,
		Notes:           req.Notes,
		AuditFields:     audit,
	}

	var applied *domain.FloatTransaction
	err = retryOnConflict(ctx, s.maxRetries, s.retryBackoff, func() error {
		var applyErr error
		applied, applyErr = s.disbursementRepo.ApplyDisbursement(ctx, disbursement, entry)
		return applyErr
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) || errors.Is(err, apperrors.ErrFloatClosed) {
			logger.Warn("Disbursement rejected",
				slog.String("float_id", float.FloatID),
				slog.String("sample_id", req.SampleID),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Error("Failed to apply disbursement",
				slog.String("float_id", float.FloatID),
				slog.String("disbursement_id", disbursementID),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("disburse: float %s, disbursement %s: %w", float.FloatID, disbursementID, err)
	}

	logger.Info("Disbursement applied",
		slog.String("float_id", float.FloatID),
		slog.String("disbursement_id", disbursementID),
		slog.String("nurse_id", req.NurseID),
		slog.String("sample_id", req.SampleID),
		slog.String("amount", req.Amount.String()),
	)

	return &portssvc.DisburseResult{
		Disbursement:  disbursement,
		TransactionID: applied.TransactionID,
		FloatID:       float.FloatID,
	}, nil
}

// resolveFloat picks the float to debit: the explicit one when given, else
// the driver's most recently created active float.
func (s *disbursementService) resolveFloat(ctx context.Context, req dto.CreateDisbursementRequest) (*domain.DriverFloat, error) {
	if req.FloatID != nil && *req.FloatID != "" {
		float, err := s.floatRepo.FindFloatByID(ctx, *req.FloatID)
		if err != nil {
			return nil, fmt.Errorf("disburse: float %s: %w", *req.FloatID, err)
		}
		if float.DriverID != req.DriverID {
			return nil, fmt.Errorf("%w: disburse: float %s does not belong to driver %s", apperrors.ErrValidation, *req.FloatID, req.DriverID)
		}
		return float, nil
	}

	float, err := s.floatRepo.FindLatestActiveFloatByDriver(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: disburse: driver %s has no active float", apperrors.ErrNotFound, req.DriverID)
		}
		return nil, fmt.Errorf("disburse: resolve float for driver %s: %w", req.DriverID, err)
	}
	return float, nil
}

// GetDisbursement retrieves a single disbursement by ID.
func (s *disbursementService) GetDisbursement(ctx context.Context, disbursementID string) (*domain.VPDisbursement, error) {
	d, err := s.disbursementRepo.FindDisbursementByID(ctx, disbursementID)
	if err != nil {
		return nil, fmt.Errorf("get: disbursement %s: %w", disbursementID, err)
	}
	return d, nil
}

// ListDisbursements retrieves a filtered page of disbursements.
func (s *disbursementService) ListDisbursements(ctx context.Context, params dto.ListDisbursementsParams) (*dto.ListDisbursementsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	disbursements, nextToken, err := s.disbursementRepo.ListDisbursements(ctx, portsrepo.ListDisbursementsParams{
		DriverID:  params.DriverID,
		NurseID:   params.NurseID,
		From:      params.From,
		To:        params.To,
		Limit:     limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		logger.Error("Failed to list disbursements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("list disbursements: %w", err)
	}

	return &dto.ListDisbursementsResponse{
		Disbursements: dto.ToDisbursementResponses(disbursements),
		NextToken:     nextToken,
	}, nil
}
