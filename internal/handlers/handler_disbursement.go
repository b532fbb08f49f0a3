package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/acculab/vpledger/internal/apperrors"
	portssvc "github.com/acculab/vpledger/internal/core/ports/services"
	"github.com/acculab/vpledger/internal/dto"
	"github.com/acculab/vpledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// disbursementHandler handles HTTP requests related to venepuncture payments.
type disbursementHandler struct {
	disbursementService portssvc.DisbursementSvcFacade
}

// newDisbursementHandler creates a new disbursementHandler.
func newDisbursementHandler(ds portssvc.DisbursementSvcFacade) *disbursementHandler {
	return &disbursementHandler{
		disbursementService: ds,
	}
}

// RegisterDisbursementRoutes registers routes related to disbursements.
func RegisterDisbursementRoutes(rg *gin.RouterGroup, disbursementService portssvc.DisbursementSvcFacade) {
	registerCustomValidators()
	h := newDisbursementHandler(disbursementService)

	disbursements := rg.Group("/disbursements")
	{
		disbursements.POST("", h.createDisbursement)
		disbursements.GET("", h.listDisbursements)
		disbursements.GET("/:disbursementID", h.getDisbursement)
	}
}

// createDisbursement godoc
// @Summary Disburse a venepuncture payment
// @Description Pays a nurse for a collected sample, atomically debiting the driver's float. When floatID is omitted the driver's most recent active float is used.
// @Tags disbursements
// @Accept  json
// @Produce  json
// @Param   disbursement body dto.CreateDisbursementRequest true "Disbursement details"
// @Success 201 {object} dto.CreateDisbursementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No float to debit"
// @Failure 422 {object} map[string]string "Float closed or insufficient balance"
// @Failure 503 {object} map[string]string "Ledger temporarily unavailable"
// @Security BearerAuth
// @Router /disbursements [post]
func (h *disbursementHandler) createDisbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDisbursement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("driver_id", req.DriverID), slog.String("sample_id", req.SampleID))
	logger.Info("Received request to disburse VP payment")

	result, err := h.disbursementService.Disburse(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error disbursing", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No float to debit", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrFloatClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Float is closed"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient float balance"})
		case errors.Is(err, apperrors.ErrDependency):
			logger.Error("Ledger dependency failure", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ledger temporarily unavailable, please retry"})
		default:
			logger.Error("Failed to disburse in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disburse payment"})
		}
		return
	}

	logger.Info("Disbursement created successfully",
		slog.String("disbursement_id", result.Disbursement.DisbursementID),
		slog.String("float_id", result.FloatID))
	c.JSON(http.StatusCreated, dto.CreateDisbursementResponse{
		Disbursement:  dto.ToDisbursementResponse(&result.Disbursement),
		TransactionID: result.TransactionID,
		FloatID:       result.FloatID,
	})
}

// getDisbursement godoc
// @Summary Get a disbursement by ID
// @Description Retrieves a single venepuncture payment record
// @Tags disbursements
// @Produce  json
// @Param   disbursementID path string true "Disbursement ID"
// @Success 200 {object} dto.DisbursementResponse
// @Failure 404 {object} map[string]string "Disbursement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve disbursement"
// @Security BearerAuth
// @Router /disbursements/{disbursementID} [get]
func (h *disbursementHandler) getDisbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	disbursementID := c.Param("disbursementID")

	disbursement, err := h.disbursementService.GetDisbursement(c.Request.Context(), disbursementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Disbursement not found", slog.String("disbursement_id", disbursementID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Disbursement not found"})
		} else {
			logger.Error("Failed to get disbursement from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve disbursement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDisbursementResponse(disbursement))
}

// listDisbursements godoc
// @Summary List disbursements
// @Description Retrieves a page of venepuncture payments, newest first, filtered by driver, nurse and date range
// @Tags disbursements
// @Produce  json
// @Param   driverID query string false "Driver ID"
// @Param   nurseID query string false "Nurse ID"
// @Param   from query string false "Disbursed-at lower bound (RFC3339, inclusive)"
// @Param   to query string false "Disbursed-at upper bound (RFC3339, inclusive)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListDisbursementsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list disbursements"
// @Security BearerAuth
// @Router /disbursements [get]
func (h *disbursementHandler) listDisbursements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDisbursementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.disbursementService.ListDisbursements(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list disbursements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list disbursements"})
		return
	}

	c.JSON(http.StatusOK, page)
}
