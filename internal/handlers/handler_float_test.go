package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acculab/vpledger/internal/apperrors"
	"github.com/acculab/vpledger/internal/core/domain"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/dto"
	"github.com/acculab/vpledger/internal/handlers"
	"github.com/acculab/vpledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FloatService ---
type MockFloatService struct {
	mock.Mock
}

func (m *MockFloatService) AllocateFloat(ctx context.Context, req dto.CreateFloatRequest, allocatedByUserID string) (*domain.DriverFloat, string, error) {
	args := m.Called(ctx, req, allocatedByUserID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.DriverFloat), args.String(1), args.Error(2)
}
func (m *MockFloatService) CloseFloat(ctx context.Context, floatID string, requestingUserID string) error {
	args := m.Called(ctx, floatID, requestingUserID)
	return args.Error(0)
}
func (m *MockFloatService) RecordReturn(ctx context.Context, floatID string, req dto.RecordReturnRequest, userID string) (*domain.FloatTransaction, error) {
	args := m.Called(ctx, floatID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FloatTransaction), args.Error(1)
}
func (m *MockFloatService) RecordRefund(ctx context.Context, floatID string, req dto.RecordRefundRequest, userID string) (*domain.FloatTransaction, error) {
	args := m.Called(ctx, floatID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FloatTransaction), args.Error(1)
}
func (m *MockFloatService) RecordAdjustment(ctx context.Context, floatID string, req dto.RecordAdjustmentRequest, userID string) (*domain.FloatTransaction, error) {
	args := m.Called(ctx, floatID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FloatTransaction), args.Error(1)
}
func (m *MockFloatService) GetFloat(ctx context.Context, floatID string) (*domain.DriverFloat, error) {
	args := m.Called(ctx, floatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverFloat), args.Error(1)
}
func (m *MockFloatService) ListFloats(ctx context.Context, params dto.ListFloatsParams) ([]domain.DriverFloat, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverFloat), args.Error(1)
}
func (m *MockFloatService) ListActiveFloats(ctx context.Context, driverID string) ([]domain.DriverFloat, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverFloat), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FloatSvcFacade = (*MockFloatService)(nil)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) GetStatement(ctx context.Context, floatID string) (*domain.Statement, error) {
	args := m.Called(ctx, floatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}
func (m *MockStatementService) SliceStatement(ctx context.Context, floatID string, from, to *time.Time) (*domain.StatementSlice, error) {
	args := m.Called(ctx, floatID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementSlice), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Test Suite ---
type FloatHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockFloatService     *MockFloatService
	mockStatementService *MockStatementService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *FloatHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "vpledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *FloatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockFloatService = new(MockFloatService)
	suite.mockStatementService = new(MockStatementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFloatRoutes(v1, suite.mockFloatService, suite.mockStatementService)
}

func (suite *FloatHandlerTestSuite) performRequest(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FloatHandlerTestSuite) TestAllocateFloat_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	reqBody := dto.CreateFloatRequest{
		DriverID:     "driver-42",
		DriverName:   "Dana Driver",
		Amount:       decimal.NewFromInt(500),
		CurrencyCode: "GBP",
	}
	expectedFloat := &domain.DriverFloat{
		FloatID:          uuid.NewString(),
		DriverID:         reqBody.DriverID,
		DriverName:       reqBody.DriverName,
		AllocatedAmount:  reqBody.Amount,
		RemainingBalance: reqBody.Amount,
		CurrencyCode:     "GBP",
		Status:           domain.FloatActive,
	}
	transactionID := uuid.NewString()

	suite.mockFloatService.On("AllocateFloat", mock.Anything, reqBody, userID).
		Return(expectedFloat, transactionID, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/floats", token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AllocateFloatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expectedFloat.FloatID, resp.Float.FloatID)
	suite.Equal(transactionID, resp.TransactionID)
	suite.True(resp.Float.RemainingBalance.Equal(decimal.NewFromInt(500)))
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestAllocateFloat_BadCurrencyRejectedByBinding() {
	token := suite.generateTestToken(uuid.NewString())

	reqBody := dto.CreateFloatRequest{
		DriverID:     "driver-42",
		DriverName:   "Dana Driver",
		Amount:       decimal.NewFromInt(500),
		CurrencyCode: "POUNDS",
	}

	w := suite.performRequest(http.MethodPost, "/api/v1/floats", token, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFloatService.AssertNotCalled(suite.T(), "AllocateFloat", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FloatHandlerTestSuite) TestAllocateFloat_Unauthorized() {
	reqBody := dto.CreateFloatRequest{
		DriverID:     "driver-42",
		DriverName:   "Dana Driver",
		Amount:       decimal.NewFromInt(500),
		CurrencyCode: "GBP",
	}

	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(reqBody))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/floats", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *FloatHandlerTestSuite) TestGetFloat_NotFound() {
	token := suite.generateTestToken(uuid.NewString())
	floatID := uuid.NewString()

	suite.mockFloatService.On("GetFloat", mock.Anything, floatID).
		Return(nil, apperrors.NewNotFoundError("float not found")).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/floats/"+floatID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestCloseFloat_NoContent() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	floatID := uuid.NewString()

	suite.mockFloatService.On("CloseFloat", mock.Anything, floatID, userID).Return(nil).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/floats/%s/close", floatID), token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestRecordReturn_Created() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	floatID := uuid.NewString()

	reqBody := dto.RecordReturnRequest{Amount: decimal.NewFromInt(40), Notes: "end of shift"}
	expectedTxn := &domain.FloatTransaction{
		TransactionID:   uuid.NewString(),
		FloatID:         floatID,
		TransactionType: domain.Credit,
		Reason:          domain.ReasonReturn,
		Amount:          reqBody.Amount,
		CurrencyCode:    "GBP",
		Notes:           reqBody.Notes,
	}

	suite.mockFloatService.On("RecordReturn", mock.Anything, floatID, reqBody, userID).
		Return(expectedTxn, nil).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/floats/%s/returns", floatID), token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expectedTxn.TransactionID, resp.TransactionID)
	suite.Equal("CREDIT", resp.Type)
	suite.Equal("RETURN", resp.Reason)
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestRecordAdjustment_InsufficientBalanceMapsTo422() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	floatID := uuid.NewString()

	reqBody := dto.RecordAdjustmentRequest{Amount: decimal.NewFromInt(9999), Type: "DEBIT"}

	suite.mockFloatService.On("RecordAdjustment", mock.Anything, floatID, reqBody, userID).
		Return(nil, fmt.Errorf("%w: debit exceeds remaining balance", apperrors.ErrInsufficientBalance)).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/floats/%s/adjustments", floatID), token, reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestRecordRefund_ClosedFloatMapsTo422() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	floatID := uuid.NewString()

	reqBody := dto.RecordRefundRequest{Amount: decimal.NewFromInt(10)}

	suite.mockFloatService.On("RecordRefund", mock.Anything, floatID, reqBody, userID).
		Return(nil, fmt.Errorf("%w: no further entries accepted", apperrors.ErrFloatClosed)).Once()

	w := suite.performRequest(http.MethodPost, fmt.Sprintf("/api/v1/floats/%s/refunds", floatID), token, reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockFloatService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestGetStatement_FullReplay() {
	token := suite.generateTestToken(uuid.NewString())
	floatID := uuid.NewString()

	expected := &domain.Statement{
		FloatID:      floatID,
		DriverID:     "driver-42",
		CurrencyCode: "GBP",
		Entries: []domain.StatementEntry{
			{
				TransactionID:  uuid.NewString(),
				Date:           time.Now().Add(-time.Hour),
				Description:    "Float allocation",
				Reason:         domain.ReasonAllocation,
				Type:           domain.Credit,
				Amount:         decimal.NewFromInt(500),
				SignedAmount:   decimal.NewFromInt(500),
				RunningBalance: decimal.NewFromInt(500),
			},
		},
		ClosingBalance: decimal.NewFromInt(500),
	}

	suite.mockStatementService.On("GetStatement", mock.Anything, floatID).
		Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, fmt.Sprintf("/api/v1/floats/%s/statement", floatID), token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(floatID, resp.FloatID)
	suite.Len(resp.Entries, 1)
	suite.Equal("Float allocation", resp.Entries[0].Description)
	suite.True(resp.ClosingBalance.Equal(decimal.NewFromInt(500)))
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestGetStatement_WithBoundsCallsSlice() {
	token := suite.generateTestToken(uuid.NewString())
	floatID := uuid.NewString()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	broughtForward := decimal.NewFromInt(400)
	expected := &domain.StatementSlice{
		FloatID:               floatID,
		From:                  &from,
		BalanceBroughtForward: &broughtForward,
		Entries:               []domain.StatementEntry{},
	}

	suite.mockStatementService.On("SliceStatement", mock.Anything, floatID, mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).
		Return(expected, nil).Once()

	path := fmt.Sprintf("/api/v1/floats/%s/statement?from=%s", floatID, from.Format(time.RFC3339))
	w := suite.performRequest(http.MethodGet, path, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementSliceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.BalanceBroughtForward)
	suite.True(resp.BalanceBroughtForward.Equal(decimal.NewFromInt(400)))
	suite.mockStatementService.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *FloatHandlerTestSuite) TestGetStatement_InvertedBoundsRejected() {
	token := suite.generateTestToken(uuid.NewString())
	floatID := uuid.NewString()

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	path := fmt.Sprintf("/api/v1/floats/%s/statement?from=%s&to=%s",
		floatID, from.Format(time.RFC3339), to.Format(time.RFC3339))

	w := suite.performRequest(http.MethodGet, path, token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "SliceStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFloatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FloatHandlerTestSuite))
}
