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

// floatHandler handles HTTP requests related to driver floats.
type floatHandler struct {
	floatService     portssvc.FloatSvcFacade
	statementService portssvc.StatementSvcFacade
}

// newFloatHandler creates a new floatHandler.
func newFloatHandler(fs portssvc.FloatSvcFacade, ss portssvc.StatementSvcFacade) *floatHandler {
	return &floatHandler{
		floatService:     fs,
		statementService: ss,
	}
}

// RegisterFloatRoutes registers routes related to driver floats.
func RegisterFloatRoutes(rg *gin.RouterGroup, floatService portssvc.FloatSvcFacade, statementService portssvc.StatementSvcFacade) {
	registerCustomValidators()
	h := newFloatHandler(floatService, statementService)

	floats := rg.Group("/floats")
	{
		floats.POST("", h.allocateFloat)
		floats.GET("", h.listFloats)
		floats.GET("/:floatID", h.getFloat)
		floats.POST("/:floatID/close", h.closeFloat)
		floats.POST("/:floatID/returns", h.recordReturn)
		floats.POST("/:floatID/refunds", h.recordRefund)
		floats.POST("/:floatID/adjustments", h.recordAdjustment)
		floats.GET("/:floatID/statement", h.getStatement)
	}
}

// allocateFloat godoc
// @Summary Allocate a new driver float
// @Description Creates a new ACTIVE float for a driver together with its opening allocation journal entry
// @Tags floats
// @Accept  json
// @Produce  json
// @Param   float body dto.CreateFloatRequest true "Float details"
// @Success 201 {object} dto.AllocateFloatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to allocate float"
// @Security BearerAuth
// @Router /floats [post]
func (h *floatHandler) allocateFloat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFloatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocateFloat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("driver_id", req.DriverID))
	logger.Info("Received request to allocate float")

	float, transactionID, err := h.floatService.AllocateFloat(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error allocating float", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to allocate float in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate float"})
		}
		return
	}

	logger.Info("Float allocated successfully", slog.String("float_id", float.FloatID))
	c.JSON(http.StatusCreated, dto.AllocateFloatResponse{
		Float:         dto.ToFloatResponse(float),
		TransactionID: transactionID,
	})
}

// getFloat godoc
// @Summary Get a float by ID
// @Description Retrieves a single driver float including its remaining balance
// @Tags floats
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Success 200 {object} dto.FloatResponse
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 500 {object} map[string]string "Failed to retrieve float"
// @Security BearerAuth
// @Router /floats/{floatID} [get]
func (h *floatHandler) getFloat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	floatID := c.Param("floatID")

	float, err := h.floatService.GetFloat(c.Request.Context(), floatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Float not found", slog.String("float_id", floatID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Float not found"})
		} else {
			logger.Error("Failed to get float from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve float"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFloatResponse(float))
}

// listFloats godoc
// @Summary List driver floats
// @Description Retrieves floats, optionally filtered by driver and status, newest first
// @Tags floats
// @Produce  json
// @Param   driverID query string false "Driver ID"
// @Param   status query string false "Float status (ACTIVE or CLOSED)"
// @Param   limit query int false "Maximum floats to return"
// @Param   offset query int false "Offset into the result set"
// @Success 200 {array} dto.FloatResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list floats"
// @Security BearerAuth
// @Router /floats [get]
func (h *floatHandler) listFloats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListFloatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	floats, err := h.floatService.ListFloats(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list floats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list floats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFloatResponses(floats))
}

// closeFloat godoc
// @Summary Close a float
// @Description Transitions a float to CLOSED so no further disbursements can debit it. Idempotent.
// @Tags floats
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Success 204 "Float closed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 500 {object} map[string]string "Failed to close float"
// @Security BearerAuth
// @Router /floats/{floatID}/close [post]
func (h *floatHandler) closeFloat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	floatID := c.Param("floatID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.floatService.CloseFloat(c.Request.Context(), floatID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Float not found for close", slog.String("float_id", floatID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Float not found"})
		} else {
			logger.Error("Failed to close float", slog.String("error", err.Error()), slog.String("float_id", floatID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close float"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// recordReturn godoc
// @Summary Record a cash return
// @Description Credits unused cash back into a float's journal
// @Tags floats
// @Accept  json
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Param   return body dto.RecordReturnRequest true "Return details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 422 {object} map[string]string "Float is closed"
// @Failure 500 {object} map[string]string "Failed to record return"
// @Security BearerAuth
// @Router /floats/{floatID}/returns [post]
func (h *floatHandler) recordReturn(c *gin.Context) {
	var req dto.RecordReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.appendJournalEntry(c, func(ctx *gin.Context, floatID, userID string) (interface{}, error) {
		txn, err := h.floatService.RecordReturn(ctx.Request.Context(), floatID, req, userID)
		if err != nil {
			return nil, err
		}
		return dto.ToTransactionResponse(txn), nil
	})
}

// recordRefund godoc
// @Summary Record a refund
// @Description Credits a refunded payment back into a float's journal
// @Tags floats
// @Accept  json
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Param   refund body dto.RecordRefundRequest true "Refund details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 422 {object} map[string]string "Float is closed"
// @Failure 500 {object} map[string]string "Failed to record refund"
// @Security BearerAuth
// @Router /floats/{floatID}/refunds [post]
func (h *floatHandler) recordRefund(c *gin.Context) {
	var req dto.RecordRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.appendJournalEntry(c, func(ctx *gin.Context, floatID, userID string) (interface{}, error) {
		txn, err := h.floatService.RecordRefund(ctx.Request.Context(), floatID, req, userID)
		if err != nil {
			return nil, err
		}
		return dto.ToTransactionResponse(txn), nil
	})
}

// recordAdjustment godoc
// @Summary Record a manual adjustment
// @Description Appends a manual correction entry to a float's journal on either side of the ledger
// @Tags floats
// @Accept  json
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Param   adjustment body dto.RecordAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 422 {object} map[string]string "Float closed or insufficient balance"
// @Failure 500 {object} map[string]string "Failed to record adjustment"
// @Security BearerAuth
// @Router /floats/{floatID}/adjustments [post]
func (h *floatHandler) recordAdjustment(c *gin.Context) {
	var req dto.RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.appendJournalEntry(c, func(ctx *gin.Context, floatID, userID string) (interface{}, error) {
		txn, err := h.floatService.RecordAdjustment(ctx.Request.Context(), floatID, req, userID)
		if err != nil {
			return nil, err
		}
		return dto.ToTransactionResponse(txn), nil
	})
}

// appendJournalEntry shares the bind/auth/error plumbing of the three journal
// entry endpoints.
func (h *floatHandler) appendJournalEntry(c *gin.Context, apply func(c *gin.Context, floatID, userID string) (interface{}, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	floatID := c.Param("floatID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := apply(c, floatID, userID)
	if err != nil {
		respondJournalError(c, logger, floatID, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// respondJournalError maps ledger errors onto HTTP statuses.
func respondJournalError(c *gin.Context, logger *slog.Logger, floatID string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Float not found"})
	case errors.Is(err, apperrors.ErrFloatClosed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Float is closed"})
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient float balance"})
	case errors.Is(err, apperrors.ErrDependency):
		logger.Error("Ledger dependency failure", slog.String("error", err.Error()), slog.String("float_id", floatID))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ledger temporarily unavailable, please retry"})
	default:
		logger.Error("Failed to append journal entry", slog.String("error", err.Error()), slog.String("float_id", floatID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update float"})
	}
}

// getStatement godoc
// @Summary Get a float statement
// @Description Replays the float's journal into a statement with running balances. With from/to query bounds a date window is returned together with the balance brought forward.
// @Tags floats
// @Produce  json
// @Param   floatID path string true "Float ID"
// @Param   from query string false "Window start (RFC3339, inclusive)"
// @Param   to query string false "Window end (RFC3339, inclusive)"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Float not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /floats/{floatID}/statement [get]
func (h *floatHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	floatID := c.Param("floatID")

	var params dto.StatementQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	if params.From == nil && params.To == nil {
		statement, err := h.statementService.GetStatement(c.Request.Context(), floatID)
		if err != nil {
			respondStatementError(c, logger, floatID, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
		return
	}

	slice, err := h.statementService.SliceStatement(c.Request.Context(), floatID, params.From, params.To)
	if err != nil {
		respondStatementError(c, logger, floatID, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementSliceResponse(slice))
}

func respondStatementError(c *gin.Context, logger *slog.Logger, floatID string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Float not found for statement", slog.String("float_id", floatID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Float not found"})
		return
	}
	logger.Error("Failed to build statement", slog.String("error", err.Error()), slog.String("float_id", floatID))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
}
