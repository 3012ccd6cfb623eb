package dto

import (
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
)

// Amount and gateway are checked by the use case so that failures carry their specific error codes.

// CreateTransactionRequest is the body of POST /api/transactions/
type CreateTransactionRequest struct {
	Amount   int64          `json:"amount"`
	Gateway  string         `json:"gateway"`
	Metadata map[string]any `json:"txn_metadata"`
}

// ToUseCase maps the request to the use-case input
func (r CreateTransactionRequest) ToUseCase() usecase.CreateTransactionRequest {
	return usecase.CreateTransactionRequest{
		Amount:   r.Amount,
		Gateway:  r.Gateway,
		Metadata: r.Metadata,
	}
}

// InitiateRequest is the body of POST /api/transactions/initiate.
// Supplying bank or card selects the direct charge flow.
type InitiateRequest struct {
	Amount   int64          `json:"amount"`
	Gateway  string         `json:"gateway"`
	Metadata map[string]any `json:"txn_metadata"`
	Bank     map[string]any `json:"bank,omitempty"`
	Card     map[string]any `json:"card,omitempty"`
}

// ToUseCase maps the request to the use-case input
func (r InitiateRequest) ToUseCase() usecase.InitiateRequest {
	return usecase.InitiateRequest{
		Amount:   r.Amount,
		Gateway:  r.Gateway,
		Metadata: r.Metadata,
		Bank:     r.Bank,
		Card:     r.Card,
	}
}

// SubmitOTPRequest is the body of POST /api/transactions/submit-otp.
// Any gateway field a client sends is ignored; the stored gateway is used.
type SubmitOTPRequest struct {
	OTP       string `json:"otp"`
	Reference string `json:"reference"`
}

// ToUseCase maps the request to the use-case input
func (r SubmitOTPRequest) ToUseCase() usecase.SubmitOTPRequest {
	return usecase.SubmitOTPRequest{
		OTP:       r.OTP,
		Reference: r.Reference,
	}
}

// TransactionResponse is the public projection of a transaction
type TransactionResponse struct {
	GatewayRef    string         `json:"gateway_ref"`
	Amount        int64          `json:"amount"`
	AmountDisplay string         `json:"amount_display"`
	Gateway       string         `json:"gateway"`
	Status        string         `json:"status"`
	Metadata      map[string]any `json:"metadata"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// FromTransaction projects a transaction entity for the API
func FromTransaction(txn *entity.Transaction) TransactionResponse {
	metadata := txn.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return TransactionResponse{
		GatewayRef:    txn.GatewayRef,
		Amount:        txn.Amount,
		AmountDisplay: entity.FormatMinorUnits(txn.Amount),
		Gateway:       txn.Gateway,
		Status:        string(txn.Status),
		Metadata:      metadata,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}
}

// FromTransactions projects a list, preserving order
func FromTransactions(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, FromTransaction(txn))
	}
	return out
}

// ReconciliationResponse is returned by initiate, verify and submit-otp.
// GatewayStatus is null when the gateway reported no status.
type ReconciliationResponse struct {
	InternalGatewayRef string         `json:"internal_gateway_ref"`
	GatewayStatus      *string        `json:"gateway_status"`
	Status             string         `json:"status"`
	GatewayResponse    map[string]any `json:"gateway_response"`
}

// FromReconciliation projects a reconciliation result for the API
func FromReconciliation(result *usecase.ReconciliationResult) ReconciliationResponse {
	resp := ReconciliationResponse{
		InternalGatewayRef: result.Transaction.GatewayRef,
		Status:             string(result.Transaction.Status),
		GatewayResponse:    result.GatewayResponse,
	}
	if result.GatewayStatus != "" {
		status := result.GatewayStatus
		resp.GatewayStatus = &status
	}
	return resp
}
