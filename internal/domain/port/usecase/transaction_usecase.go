package usecase

import (
	"context"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

// CreateTransactionRequest creates a simulated pending transaction
type CreateTransactionRequest struct {
	Amount   int64
	Gateway  string
	Metadata map[string]any
}

// InitiateRequest creates a transaction and starts a real gateway charge
type InitiateRequest struct {
	Amount   int64
	Gateway  string
	Metadata map[string]any
	Bank     map[string]any // direct charge when set
	Card     map[string]any // direct charge when set
}

// SubmitOTPRequest completes the OTP step of a direct charge
type SubmitOTPRequest struct {
	OTP       string
	Reference string
}

// ReconciliationResult is returned by every gateway-backed operation
type ReconciliationResult struct {
	Transaction     *entity.Transaction
	GatewayStatus   string // empty when the gateway reported no status
	GatewayResponse gateway.Response
}

// TransactionUseCase defines the reconciliation operations
type TransactionUseCase interface {
	// Create persists a pending transaction without contacting the gateway
	Create(ctx context.Context, customerID uint64, req CreateTransactionRequest) (*entity.Transaction, error)

	// Initiate creates a pending transaction and starts a charge on its gateway
	Initiate(ctx context.Context, customerID uint64, req InitiateRequest) (*ReconciliationResult, error)

	// Verify queries the transaction's gateway and records the reported status
	Verify(ctx context.Context, customerID uint64, reference string) (*ReconciliationResult, error)

	// SubmitOTP forwards an OTP to the transaction's gateway and records the reported status
	SubmitOTP(ctx context.Context, customerID uint64, req SubmitOTPRequest) (*ReconciliationResult, error)

	// List returns the customer's transactions, newest first
	List(ctx context.Context, customerID uint64) ([]*entity.Transaction, error)
}
