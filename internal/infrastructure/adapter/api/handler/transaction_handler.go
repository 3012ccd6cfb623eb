package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// Create handles POST /api/transactions/
func (h *TransactionHandler) Create(c *gin.Context) {
	customer, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	txn, err := h.transactionUseCase.Create(c.Request.Context(), customer, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Transaction created", dto.FromTransaction(txn))
}

// List handles GET /api/transactions/
func (h *TransactionHandler) List(c *gin.Context) {
	customer, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	txns, err := h.transactionUseCase.List(c.Request.Context(), customer)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "List of transactions", dto.FromTransactions(txns))
}

// Initiate handles POST /api/transactions/initiate
func (h *TransactionHandler) Initiate(c *gin.Context) {
	customer, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.InitiateRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.transactionUseCase.Initiate(c.Request.Context(), customer, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Payment initiation processed", dto.FromReconciliation(result))
}

// Verify handles GET /api/transactions/verify/:reference
func (h *TransactionHandler) Verify(c *gin.Context) {
	customer, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	result, err := h.transactionUseCase.Verify(c.Request.Context(), customer, c.Param("reference"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Payment verification returned successfully", dto.FromReconciliation(result))
}

// SubmitOTP handles POST /api/transactions/submit-otp
func (h *TransactionHandler) SubmitOTP(c *gin.Context) {
	customer, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.SubmitOTPRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.transactionUseCase.SubmitOTP(c.Request.Context(), customer, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "OTP submitted successfully", dto.FromReconciliation(result))
}
