package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMoniepoint(baseURL string) *MoniepointGateway {
	return NewMoniepointGateway(MoniepointConfig{
		ProviderConfig: ProviderConfig{
			SecretKey: "mp_test_456",
			BaseURL:   baseURL,
			Timeout:   2 * time.Second,
		},
		ContractCode: "626609763141",
	}, logger.NewNoopLogger())
}

func TestMoniepointInitializeCharge(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK,
		`{"requestSuccessful":true,"responseMessage":"success","responseBody":{"checkoutUrl":"https://sandbox.monnify.com/checkout/abc"}}`)
	mp := newTestMoniepoint(server.URL)

	resp, err := mp.InitializeCharge(context.Background(), gwport.InitializeRequest{
		Reference: "txn_0a1b2c3d4e",
		Email:     "ada@example.com",
		Amount:    500000,
		Metadata:  map[string]any{"order": "A1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/transactions/init-transaction", recorded.Path)
	assert.Equal(t, "Bearer mp_test_456", recorded.Auth)
	assert.Equal(t, float64(5000), recorded.Body["amount"])
	assert.Equal(t, "ada@example.com", recorded.Body["customerEmail"])
	assert.Equal(t, "txn_0a1b2c3d4e", recorded.Body["paymentReference"])
	assert.Equal(t, DefaultCurrency, recorded.Body["currencyCode"])
	assert.Equal(t, "626609763141", recorded.Body["contractCode"])
	assert.Equal(t, map[string]any{"order": "A1"}, recorded.Body["metaData"])
	assert.Equal(t, true, resp["requestSuccessful"])
}

func TestMoniepointCharge(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK, `{"data":{"status":"send_otp"}}`)
	mp := newTestMoniepoint(server.URL)

	resp, err := mp.Charge(context.Background(), gwport.ChargeRequest{
		Reference: "txn_0a1b2c3d4e",
		Email:     "ada@example.com",
		Amount:    1015,
		Card:      map[string]any{"number": "5060666666666666666"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/transactions/charge", recorded.Path)
	assert.Equal(t, 10.15, recorded.Body["amount"])
	assert.Equal(t, map[string]any{"number": "5060666666666666666"}, recorded.Body["card"])
	assert.Equal(t, "send_otp", resp["data"].(map[string]any)["status"])
}

func TestMoniepointChargeValidation(t *testing.T) {
	server, _, calls := newProviderServer(t, http.StatusOK, `{}`)
	mp := newTestMoniepoint(server.URL)

	_, err := mp.Charge(context.Background(), gwport.ChargeRequest{Email: "ada@example.com", Amount: -1})

	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	assert.Equal(t, int32(0), *calls)
}

func TestMoniepointVerifyPayment(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK, `{"data":{"status":"success"}}`)
	mp := newTestMoniepoint(server.URL)

	_, err := mp.VerifyPayment(context.Background(), "txn_0a1b2c3d4e")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, recorded.Method)
	assert.Equal(t, "/transactions/txn_0a1b2c3d4e", recorded.Path)
}

func TestMoniepointSubmitOTP(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK, `{"data":{"status":"success"}}`)
	mp := newTestMoniepoint(server.URL)

	_, err := mp.SubmitOTP(context.Background(), "123456", "txn_0a1b2c3d4e")

	require.NoError(t, err)
	assert.Equal(t, "/transactions/otp/authorize", recorded.Path)
	assert.Equal(t, "123456", recorded.Body["otp"])
	assert.Equal(t, "txn_0a1b2c3d4e", recorded.Body["paymentReference"])
}

func TestMoniepointServerError(t *testing.T) {
	server, _, _ := newProviderServer(t, http.StatusBadGateway, `upstream unavailable`)
	mp := newTestMoniepoint(server.URL)

	_, err := mp.VerifyPayment(context.Background(), "txn_0a1b2c3d4e")

	assert.ErrorIs(t, err, errs.ErrGatewayTransport)
	assert.Contains(t, err.Error(), "http=502")
}
