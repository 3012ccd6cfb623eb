package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

// MoniepointName is the registry key for Moniepoint
const MoniepointName = "moniepoint"

// DefaultCurrency is used when no currency code is configured
const DefaultCurrency = "NGN"

// MoniepointConfig extends ProviderConfig with the merchant contract settings
type MoniepointConfig struct {
	ProviderConfig
	ContractCode string
	Currency     string
}

// MoniepointGateway talks to the Moniepoint merchant API.
// Moniepoint expects major-unit amounts, so kobo is converted on the way out.
type MoniepointGateway struct {
	client       *apiClient
	contractCode string
	currency     string
}

// NewMoniepointGateway creates a Moniepoint adapter bound to one secret key and base URL
func NewMoniepointGateway(cfg MoniepointConfig, logger coreport.Logger) *MoniepointGateway {
	currency := cfg.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &MoniepointGateway{
		client:       newAPIClient(MoniepointName, cfg.ProviderConfig, logger),
		contractCode: cfg.ContractCode,
		currency:     currency,
	}
}

// Name returns the registry key
func (m *MoniepointGateway) Name() string {
	return MoniepointName
}

// InitializeCharge creates a hosted checkout
func (m *MoniepointGateway) InitializeCharge(ctx context.Context, req gwport.InitializeRequest) (gwport.Response, error) {
	if err := validateCharge(req.Email, req.Amount); err != nil {
		return nil, err
	}

	payload := m.basePayload(req.Reference, req.Email, req.Amount, req.Metadata)
	return m.client.do(ctx, gwport.OpInitializeCharge, http.MethodPost, "/transactions/init-transaction", payload)
}

// Charge debits a bank account or card directly
func (m *MoniepointGateway) Charge(ctx context.Context, req gwport.ChargeRequest) (gwport.Response, error) {
	if err := validateCharge(req.Email, req.Amount); err != nil {
		return nil, err
	}

	payload := m.basePayload(req.Reference, req.Email, req.Amount, req.Metadata)
	if len(req.Bank) > 0 {
		payload["bank"] = req.Bank
	}
	if len(req.Card) > 0 {
		payload["card"] = req.Card
	}

	return m.client.do(ctx, gwport.OpCharge, http.MethodPost, "/transactions/charge", payload)
}

// VerifyPayment fetches the transaction by payment reference
func (m *MoniepointGateway) VerifyPayment(ctx context.Context, reference string) (gwport.Response, error) {
	return m.client.do(ctx, gwport.OpVerifyPayment, http.MethodGet, "/transactions/"+url.PathEscape(reference), nil)
}

// SubmitOTP authorizes a pending charge with the customer's OTP
func (m *MoniepointGateway) SubmitOTP(ctx context.Context, otp, reference string) (gwport.Response, error) {
	payload := map[string]any{
		"paymentReference": reference,
		"otp":              otp,
	}
	return m.client.do(ctx, gwport.OpSubmitOTP, http.MethodPost, "/transactions/otp/authorize", payload)
}

func (m *MoniepointGateway) basePayload(reference, email string, amount int64, metadata map[string]any) map[string]any {
	payload := map[string]any{
		"amount":        json.Number(entity.FormatMinorUnits(amount)),
		"customerEmail": email,
		"currencyCode":  m.currency,
		"metaData":      metadataOrEmpty(metadata),
	}
	if reference != "" {
		payload["paymentReference"] = reference
	}
	if m.contractCode != "" {
		payload["contractCode"] = m.contractCode
	}
	return payload
}

var _ gwport.Gateway = (*MoniepointGateway)(nil)
