package gateway

import (
	"context"
	"net/http"
	"net/url"

	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

// PaystackName is the registry key for Paystack
const PaystackName = "paystack"

// PaystackGateway talks to the Paystack REST API. Amounts are sent in kobo.
type PaystackGateway struct {
	client *apiClient
}

// NewPaystackGateway creates a Paystack adapter bound to one secret key and base URL
func NewPaystackGateway(cfg ProviderConfig, logger coreport.Logger) *PaystackGateway {
	return &PaystackGateway{client: newAPIClient(PaystackName, cfg, logger)}
}

// Name returns the registry key
func (p *PaystackGateway) Name() string {
	return PaystackName
}

// InitializeCharge creates a hosted checkout
func (p *PaystackGateway) InitializeCharge(ctx context.Context, req gwport.InitializeRequest) (gwport.Response, error) {
	if err := validateCharge(req.Email, req.Amount); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"email":    req.Email,
		"amount":   req.Amount,
		"metadata": metadataOrEmpty(req.Metadata),
	}
	if req.Reference != "" {
		payload["reference"] = req.Reference
	}

	return p.client.do(ctx, gwport.OpInitializeCharge, http.MethodPost, "/transaction/initialize", payload)
}

// Charge debits a bank account or card directly
func (p *PaystackGateway) Charge(ctx context.Context, req gwport.ChargeRequest) (gwport.Response, error) {
	if err := validateCharge(req.Email, req.Amount); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"email":    req.Email,
		"amount":   req.Amount,
		"metadata": metadataOrEmpty(req.Metadata),
	}
	if req.Reference != "" {
		payload["reference"] = req.Reference
	}
	if len(req.Bank) > 0 {
		payload["bank"] = req.Bank
	}
	if len(req.Card) > 0 {
		payload["card"] = req.Card
	}

	return p.client.do(ctx, gwport.OpCharge, http.MethodPost, "/charge", payload)
}

// VerifyPayment fetches the transaction by reference
func (p *PaystackGateway) VerifyPayment(ctx context.Context, reference string) (gwport.Response, error) {
	return p.client.do(ctx, gwport.OpVerifyPayment, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
}

// SubmitOTP completes a charge that answered with send_otp
func (p *PaystackGateway) SubmitOTP(ctx context.Context, otp, reference string) (gwport.Response, error) {
	payload := map[string]any{
		"otp":       otp,
		"reference": reference,
	}
	return p.client.do(ctx, gwport.OpSubmitOTP, http.MethodPost, "/charge/submit_otp", payload)
}

func metadataOrEmpty(metadata map[string]any) map[string]any {
	if metadata == nil {
		return map[string]any{}
	}
	return metadata
}

var _ gwport.Gateway = (*PaystackGateway)(nil)
