package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockFloatRepo *MockFloatRepository
	mockDisbRepo  *MockDisbursementRepository
	service       portssvc.StatementSvcFacade

	floatID string
	float   *domain.DriverFloat
	baseAt  time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockFloatRepo = new(MockFloatRepository)
	suite.mockDisbRepo = new(MockDisbursementRepository)
	suite.service = services.NewStatementService(suite.mockFloatRepo, suite.mockDisbRepo)

	suite.floatID = uuid.NewString()
	suite.float = &domain.DriverFloat{
		FloatID:      suite.floatID,
		DriverID:     "driver-1",
		DriverName:   "Dan Driver",
		CurrencyCode: "GBP",
		Status:       domain.FloatActive,
	}
	suite.baseAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (suite *StatementServiceTestSuite) entry(seq int64, at time.Time, txnType domain.TransactionType, reason domain.TransactionReason, amount int64, refID string) domain.FloatTransaction {
	return domain.FloatTransaction{
		TransactionID:   uuid.NewString(),
		FloatID:         suite.floatID,
		DriverID:        "driver-1",
		TransactionType: txnType,
		Amount:          decimal.NewFromInt(amount),
		Reason:          reason,
		ReferenceID:     refID,
		CurrencyCode:    "GBP",
		Seq:             seq,
		AuditFields:     domain.AuditFields{CreatedAt: at},
	}
}

// --- GetStatement ---

func (suite *StatementServiceTestSuite) TestGetStatement_ReplaysRunningBalance() {
	ctx := context.Background()
	disbID := uuid.NewString()
	journal := []domain.FloatTransaction{
		suite.entry(1, suite.baseAt, domain.Credit, domain.ReasonAllocation, 500, ""),
		suite.entry(2, suite.baseAt.Add(time.Hour), domain.Debit, domain.ReasonVPDisbursement, 30, disbID),
		suite.entry(3, suite.baseAt.Add(2*time.Hour), domain.Credit, domain.ReasonReturn, 10, ""),
		suite.entry(4, suite.baseAt.Add(3*time.Hour), domain.Debit, domain.ReasonAdjustment, 5, ""),
	}

	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(suite.float, nil).Once()
	suite.mockFloatRepo.On("FindTransactionsByFloatID", ctx, suite.floatID).Return(journal, nil).Once()
	suite.mockDisbRepo.On("FindDisbursementsByIDs", ctx, []string{disbID}).Return(map[string]domain.VPDisbursement{
		disbID: {DisbursementID: disbID, NurseName: "Nina Nurse", SampleID: "sample-42"},
	}, nil).Once()

	statement, err := suite.service.GetStatement(ctx, suite.floatID)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 4)
	suite.Equal("driver-1", statement.DriverID)

	suite.True(statement.Entries[0].RunningBalance.Equal(decimal.NewFromInt(500)))
	suite.True(statement.Entries[1].RunningBalance.Equal(decimal.NewFromInt(470)))
	suite.True(statement.Entries[2].RunningBalance.Equal(decimal.NewFromInt(480)))
	suite.True(statement.Entries[3].RunningBalance.Equal(decimal.NewFromInt(475)))
	suite.True(statement.ClosingBalance.Equal(decimal.NewFromInt(475)))

	suite.Equal("Float allocation", statement.Entries[0].Description)
	suite.Equal("VP payment to Nina Nurse for sample sample-42", statement.Entries[1].Description)
	suite.True(statement.Entries[1].SignedAmount.Equal(decimal.NewFromInt(-30)))
	suite.mockFloatRepo.AssertExpectations(suite.T())
	suite.mockDisbRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetStatement_EmptyJournal() {
	ctx := context.Background()

	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(suite.float, nil).Once()
	suite.mockFloatRepo.On("FindTransactionsByFloatID", ctx, suite.floatID).Return([]domain.FloatTransaction{}, nil).Once()

	statement, err := suite.service.GetStatement(ctx, suite.floatID)

	suite.Require().NoError(err)
	suite.Empty(statement.Entries)
	suite.True(statement.ClosingBalance.IsZero())
	suite.mockDisbRepo.AssertNotCalled(suite.T(), "FindDisbursementsByIDs", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatement_FloatNotFound() {
	ctx := context.Background()

	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetStatement(ctx, suite.floatID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(statement)
}

func (suite *StatementServiceTestSuite) TestGetStatement_SeqBreaksCreatedAtTies() {
	ctx := context.Background()
	// Two entries share a timestamp; the store returned them out of order.
	journal := []domain.FloatTransaction{
		suite.entry(3, suite.baseAt.Add(time.Hour), domain.Debit, domain.ReasonAdjustment, 20, ""),
		suite.entry(2, suite.baseAt.Add(time.Hour), domain.Credit, domain.ReasonReturn, 50, ""),
		suite.entry(1, suite.baseAt, domain.Credit, domain.ReasonAllocation, 100, ""),
	}

	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(suite.float, nil).Once()
	suite.mockFloatRepo.On("FindTransactionsByFloatID", ctx, suite.floatID).Return(journal, nil).Once()

	statement, err := suite.service.GetStatement(ctx, suite.floatID)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 3)
	suite.Equal(int64(1), seqOf(statement.Entries[0], journal))
	suite.Equal(int64(2), seqOf(statement.Entries[1], journal))
	suite.Equal(int64(3), seqOf(statement.Entries[2], journal))
	suite.True(statement.Entries[1].RunningBalance.Equal(decimal.NewFromInt(150)))
	suite.True(statement.ClosingBalance.Equal(decimal.NewFromInt(130)))
}

// seqOf maps a statement entry back to its journal entry's sequence.
func seqOf(e domain.StatementEntry, journal []domain.FloatTransaction) int64 {
	for i := range journal {
		if journal[i].TransactionID == e.TransactionID {
			return journal[i].Seq
		}
	}
	return -1
}

// --- SliceStatement ---

func (suite *StatementServiceTestSuite) sliceFixture(ctx context.Context) []domain.FloatTransaction {
	journal := []domain.FloatTransaction{
		suite.entry(1, suite.baseAt, domain.Credit, domain.ReasonAllocation, 500, ""),
		suite.entry(2, suite.baseAt.AddDate(0, 0, 1), domain.Debit, domain.ReasonAdjustment, 100, ""),
		suite.entry(3, suite.baseAt.AddDate(0, 0, 2), domain.Credit, domain.ReasonRefund, 25, ""),
		suite.entry(4, suite.baseAt.AddDate(0, 0, 3), domain.Debit, domain.ReasonAdjustment, 50, ""),
	}
	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(suite.float, nil)
	suite.mockFloatRepo.On("FindTransactionsByFloatID", ctx, suite.floatID).Return(journal, nil)
	return journal
}

func (suite *StatementServiceTestSuite) TestSliceStatement_BalanceBroughtForward() {
	ctx := context.Background()
	suite.sliceFixture(ctx)

	from := suite.baseAt.AddDate(0, 0, 2)
	slice, err := suite.service.SliceStatement(ctx, suite.floatID, &from, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(slice.BalanceBroughtForward)
	// Entries 1 and 2 precede the window: 500 - 100.
	suite.True(slice.BalanceBroughtForward.Equal(decimal.NewFromInt(400)))
	suite.Require().Len(slice.Entries, 2)

	// Brought-forward plus the window's signed amounts equals the final
	// running balance; slicing loses no information.
	total := *slice.BalanceBroughtForward
	for _, e := range slice.Entries {
		total = total.Add(e.SignedAmount)
	}
	suite.True(total.Equal(slice.Entries[len(slice.Entries)-1].RunningBalance))
}

func (suite *StatementServiceTestSuite) TestSliceStatement_InclusiveBounds() {
	ctx := context.Background()
	suite.sliceFixture(ctx)

	from := suite.baseAt.AddDate(0, 0, 1)
	to := suite.baseAt.AddDate(0, 0, 2)
	slice, err := suite.service.SliceStatement(ctx, suite.floatID, &from, &to)

	suite.Require().NoError(err)
	suite.Require().Len(slice.Entries, 2)
	suite.True(slice.BalanceBroughtForward.Equal(decimal.NewFromInt(500)))
}

func (suite *StatementServiceTestSuite) TestSliceStatement_NoEntriesBeforeWindow() {
	ctx := context.Background()
	suite.sliceFixture(ctx)

	slice, err := suite.service.SliceStatement(ctx, suite.floatID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(slice.BalanceBroughtForward)
	// Entries exist but none precede an unbounded window: zero, not nil.
	suite.True(slice.BalanceBroughtForward.IsZero())
	suite.Len(slice.Entries, 4)
}

func (suite *StatementServiceTestSuite) TestSliceStatement_EmptyJournalHasNilBroughtForward() {
	ctx := context.Background()

	suite.mockFloatRepo.On("FindFloatByID", ctx, suite.floatID).Return(suite.float, nil).Once()
	suite.mockFloatRepo.On("FindTransactionsByFloatID", ctx, suite.floatID).Return([]domain.FloatTransaction{}, nil).Once()

	from := suite.baseAt
	slice, err := suite.service.SliceStatement(ctx, suite.floatID, &from, nil)

	suite.Require().NoError(err)
	suite.Nil(slice.BalanceBroughtForward)
	suite.Empty(slice.Entries)
}

func (suite *StatementServiceTestSuite) TestSliceStatement_WindowAfterAllEntries() {
	ctx := context.Background()
	suite.sliceFixture(ctx)

	from := suite.baseAt.AddDate(0, 1, 0)
	slice, err := suite.service.SliceStatement(ctx, suite.floatID, &from, nil)

	suite.Require().NoError(err)
	suite.Empty(slice.Entries)
	suite.Require().NotNil(slice.BalanceBroughtForward)
	// Everything precedes the window, so brought-forward is the closing balance.
	suite.True(slice.BalanceBroughtForward.Equal(decimal.NewFromInt(375)))
}

// --- Run Suite ---
func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
