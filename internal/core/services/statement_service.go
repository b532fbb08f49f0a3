package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acculab/vpledger/internal/core/domain"
	portsrepo "github.com/acculab/vpledger/internal/core/ports/repositories"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/middleware"
)

// statementService replays a float's journal into bank-statement-style views.
// The journal is the sole source of truth: statements are always rebuilt from
// it rather than read from a materialized table.
type statementService struct {
	floatRepo        portsrepo.FloatReader
	disbursementRepo portsrepo.DisbursementReader
}

// NewStatementService creates a new StatementService.
func NewStatementService(floatRepo portsrepo.FloatReader, disbursementRepo portsrepo.DisbursementReader) portssvc.StatementSvcFacade {
	return &statementService{
		floatRepo:        floatRepo,
		disbursementRepo: disbursementRepo,
	}
}

// Ensure statementService implements portssvc.StatementSvcFacade
var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// GetStatement replays the float's full journal, oldest first, accumulating a
// running balance from zero. Ordering is by creation time with the insertion
// sequence as tie-breaker, so repeated replays of the same journal are
// identical.
func (s *statementService) GetStatement(ctx context.Context, floatID string) (*domain.Statement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	float, err := s.floatRepo.FindFloatByID(ctx, floatID)
	if err != nil {
		return nil, fmt.Errorf("statement: float %s: %w", floatID, err)
	}

	transactions, err := s.floatRepo.FindTransactionsByFloatID(ctx, floatID)
	if err != nil {
		logger.Error("Failed to fetch journal for statement", slog.String("error", err.Error()), slog.String("float_id", floatID))
		return nil, fmt.Errorf("statement: journal for float %s: %w", floatID, err)
	}

	// The repository already orders by (created_at, seq); re-sorting keeps
	// replay deterministic even against stores without that guarantee.
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
		}
		return transactions[i].Seq < transactions[j].Seq
	})

	disbursements, err := s.linkedDisbursements(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("statement: disbursement lookup for float %s: %w", floatID, err)
	}

	entries := make([]domain.StatementEntry, len(transactions))
	runningBalance := decimal.Zero
	for i := range transactions {
		txn := &transactions[i]
		signed, err := txn.SignedAmount()
		if err != nil {
			return nil, fmt.Errorf("statement: float %s: %w", floatID, err)
		}
		runningBalance = runningBalance.Add(signed)

		entries[i] = domain.StatementEntry{
			TransactionID:  txn.TransactionID,
			Date:           txn.CreatedAt,
			Description:    describeEntry(txn, disbursements),
			Reason:         txn.Reason,
			Type:           txn.TransactionType,
			Amount:         txn.Amount,
			SignedAmount:   signed,
			RunningBalance: runningBalance,
			ReferenceID:    txn.ReferenceID,
			Notes:          txn.Notes,
		}
	}

	logger.Debug("Statement reconstructed", slog.String("float_id", floatID), slog.Int("entry_count", len(entries)))
	return &domain.Statement{
		FloatID:        floatID,
		DriverID:       float.DriverID,
		CurrencyCode:   float.CurrencyCode,
		Entries:        entries,
		ClosingBalance: runningBalance,
	}, nil
}

// SliceStatement windows a full replay to [from, to]. Because the slice is
// cut from the same replay that produces running balances, the balance
// brought forward plus the window's signed amounts always equals the running
// balance at the window's last entry.
func (s *statementService) SliceStatement(ctx context.Context, floatID string, from, to *time.Time) (*domain.StatementSlice, error) {
	statement, err := s.GetStatement(ctx, floatID)
	if err != nil {
		return nil, err
	}

	slice := &domain.StatementSlice{
		FloatID: floatID,
		From:    from,
		To:      to,
		Entries: []domain.StatementEntry{},
	}

	if len(statement.Entries) == 0 {
		// Empty journal: no balance to bring forward.
		return slice, nil
	}

	broughtForward := decimal.Zero
	for _, entry := range statement.Entries {
		if from != nil && entry.Date.Before(*from) {
			broughtForward = entry.RunningBalance
			continue
		}
		if to != nil && entry.Date.After(*to) {
			break
		}
		slice.Entries = append(slice.Entries, entry)
	}
	slice.BalanceBroughtForward = &broughtForward

	return slice, nil
}

// linkedDisbursements batch-fetches the disbursements referenced by
// vp_disbursement entries so their descriptions can name the nurse and sample.
func (s *statementService) linkedDisbursements(ctx context.Context, transactions []domain.FloatTransaction) (map[string]domain.VPDisbursement, error) {
	ids := make([]string, 0)
	for i := range transactions {
		if transactions[i].Reason == domain.ReasonVPDisbursement && transactions[i].ReferenceID != "" {
			ids = append(ids, transactions[i].ReferenceID)
		}
	}
	if len(ids) == 0 {
		return map[string]domain.VPDisbursement{}, nil
	}
	return s.disbursementRepo.FindDisbursementsByIDs(ctx, ids)
}

// describeEntry renders the human description for a statement line.
func describeEntry(txn *domain.FloatTransaction, disbursements map[string]domain.VPDisbursement) string {
	switch txn.Reason {
	case domain.ReasonAllocation:
		return "Float allocation"
	case domain.ReasonVPDisbursement:
		if d, ok := disbursements[txn.ReferenceID]; ok {
			return fmt.Sprintf("VP payment to %s for sample %s", d.NurseName, d.SampleID)
		}
		return fmt.Sprintf("VP payment (disbursement %s)", txn.ReferenceID)
	case domain.ReasonReturn:
		return "Cash returned to float"
	case domain.ReasonRefund:
		return "Refund credited to float"
	case domain.ReasonAdjustment:
		if txn.TransactionType == domain.Debit {
			return "Manual adjustment (debit)"
		}
		return "Manual adjustment (credit)"
	default:
		return string(txn.Reason)
	}
}
