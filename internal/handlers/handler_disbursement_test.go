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

// --- Mock DisbursementService ---
type MockDisbursementService struct {
	mock.Mock
}

func (m *MockDisbursementService) Disburse(ctx context.Context, req dto.CreateDisbursementRequest, createdByUserID string) (*portssvc.DisburseResult, error) {
	args := m.Called(ctx, req, createdByUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.DisburseResult), args.Error(1)
}
func (m *MockDisbursementService) GetDisbursement(ctx context.Context, disbursementID string) (*domain.VPDisbursement, error) {
	args := m.Called(ctx, disbursementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VPDisbursement), args.Error(1)
}
func (m *MockDisbursementService) ListDisbursements(ctx context.Context, params dto.ListDisbursementsParams) (*dto.ListDisbursementsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDisbursementsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DisbursementSvcFacade = (*MockDisbursementService)(nil)

// --- Test Suite ---
type DisbursementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDisbursementService
	jwtSecret   string
}

func (suite *DisbursementHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *DisbursementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockDisbursementService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDisbursementRoutes(v1, suite.mockService)
}

func (suite *DisbursementHandlerTestSuite) performRequest(method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func (suite *DisbursementHandlerTestSuite) disburseRequest() dto.CreateDisbursementRequest {
	return dto.CreateDisbursementRequest{
		SampleID:     "sample-77",
		NurseID:      "nurse-9",
		NurseName:    "Nina Nurse",
		DriverID:     "driver-42",
		Amount:       decimal.NewFromInt(30),
		CurrencyCode: "GBP",
	}
}

// --- Test Cases ---

func (suite *DisbursementHandlerTestSuite) TestCreateDisbursement_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	reqBody := suite.disburseRequest()

	floatID := uuid.NewString()
	result := &portssvc.DisburseResult{
		Disbursement: domain.VPDisbursement{
			DisbursementID: uuid.NewString(),
			SampleID:       reqBody.SampleID,
			NurseID:        reqBody.NurseID,
			NurseName:      reqBody.NurseName,
			DriverID:       reqBody.DriverID,
			DriverName:     "Dana Driver",
			FloatID:        floatID,
			Amount:         reqBody.Amount,
			CurrencyCode:   "GBP",
			DisbursedAt:    time.Now(),
		},
		TransactionID: uuid.NewString(),
		FloatID:       floatID,
	}

	suite.mockService.On("Disburse", mock.Anything, reqBody, userID).Return(result, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/disbursements", token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateDisbursementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(result.Disbursement.DisbursementID, resp.Disbursement.DisbursementID)
	suite.Equal(floatID, resp.FloatID)
	suite.Equal(result.TransactionID, resp.TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestCreateDisbursement_MissingSampleIDRejected() {
	token := suite.generateTestToken(uuid.NewString())
	reqBody := suite.disburseRequest()
	reqBody.SampleID = ""

	w := suite.performRequest(http.MethodPost, "/api/v1/disbursements", token, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Disburse", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DisbursementHandlerTestSuite) TestCreateDisbursement_NoActiveFloatMapsTo404() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	reqBody := suite.disburseRequest()

	suite.mockService.On("Disburse", mock.Anything, reqBody, userID).
		Return(nil, fmt.Errorf("%w: no active float for driver %s", apperrors.ErrNotFound, reqBody.DriverID)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/disbursements", token, reqBody)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestCreateDisbursement_InsufficientBalanceMapsTo422() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	reqBody := suite.disburseRequest()

	suite.mockService.On("Disburse", mock.Anything, reqBody, userID).
		Return(nil, fmt.Errorf("%w: float balance too low", apperrors.ErrInsufficientBalance)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/disbursements", token, reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestCreateDisbursement_RetryExhaustionMapsTo503() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)
	reqBody := suite.disburseRequest()

	suite.mockService.On("Disburse", mock.Anything, reqBody, userID).
		Return(nil, fmt.Errorf("%w: write conflicts persisted after retries", apperrors.ErrDependency)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/disbursements", token, reqBody)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestGetDisbursement_Success() {
	token := suite.generateTestToken(uuid.NewString())
	disbursementID := uuid.NewString()

	expected := &domain.VPDisbursement{
		DisbursementID: disbursementID,
		SampleID:       "sample-77",
		NurseID:        "nurse-9",
		NurseName:      "Nina Nurse",
		DriverID:       "driver-42",
		DriverName:     "Dana Driver",
		FloatID:        uuid.NewString(),
		Amount:         decimal.NewFromInt(30),
		CurrencyCode:   "GBP",
		DisbursedAt:    time.Now(),
	}

	suite.mockService.On("GetDisbursement", mock.Anything, disbursementID).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/disbursements/"+disbursementID, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DisbursementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(disbursementID, resp.DisbursementID)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(30)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DisbursementHandlerTestSuite) TestListDisbursements_ForwardsFiltersAndToken() {
	token := suite.generateTestToken(uuid.NewString())

	next := "next-token"
	page := &dto.ListDisbursementsResponse{
		Disbursements: []dto.DisbursementResponse{{DisbursementID: uuid.NewString()}},
		NextToken:     &next,
	}

	suite.mockService.On("ListDisbursements", mock.Anything, mock.MatchedBy(func(p dto.ListDisbursementsParams) bool {
		return p.DriverID == "driver-42" && p.Limit == 5
	})).Return(page, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/disbursements?driverID=driver-42&limit=5", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListDisbursementsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Disbursements, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func TestDisbursementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DisbursementHandlerTestSuite))
}
