package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// newProviderServer answers every request with status and body, recording what it received
func newProviderServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest, *int32) {
	t.Helper()
	recorded := &recordedRequest{}
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		recorded.Method = r.Method
		recorded.Path = r.URL.EscapedPath()
		recorded.Auth = r.Header.Get("Authorization")

		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			recorded.Body = map[string]any{}
			_ = json.Unmarshal(raw, &recorded.Body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, recorded, &calls
}

func newTestPaystack(baseURL string) *PaystackGateway {
	return NewPaystackGateway(ProviderConfig{
		SecretKey: "sk_test_123",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
	}, logger.NewNoopLogger())
}

func TestPaystackInitializeCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends the exact amount and returns the body as-is", func(t *testing.T) {
		server, recorded, _ := newProviderServer(t, http.StatusOK,
			`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","reference":"txn_0a1b2c3d4e"}}`)
		ps := newTestPaystack(server.URL)

		resp, err := ps.InitializeCharge(ctx, gwport.InitializeRequest{
			Reference: "txn_0a1b2c3d4e",
			Email:     "ada@example.com",
			Amount:    5000,
			Metadata:  map[string]any{"internal_gateway_ref": "txn_0a1b2c3d4e"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, recorded.Method)
		assert.Equal(t, "/transaction/initialize", recorded.Path)
		assert.Equal(t, "Bearer sk_test_123", recorded.Auth)
		assert.Equal(t, float64(5000), recorded.Body["amount"])
		assert.Equal(t, "ada@example.com", recorded.Body["email"])
		assert.Equal(t, "txn_0a1b2c3d4e", recorded.Body["reference"])
		assert.Equal(t, map[string]any{"internal_gateway_ref": "txn_0a1b2c3d4e"}, recorded.Body["metadata"])

		assert.Equal(t, true, resp["status"])
		data, ok := resp["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://checkout.paystack.com/abc", data["authorization_url"])
	})

	t.Run("Nil metadata is sent as an empty object", func(t *testing.T) {
		server, recorded, _ := newProviderServer(t, http.StatusOK, `{"status":true}`)
		ps := newTestPaystack(server.URL)

		_, err := ps.InitializeCharge(ctx, gwport.InitializeRequest{Email: "ada@example.com", Amount: 100})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, recorded.Body["metadata"])
		_, hasRef := recorded.Body["reference"]
		assert.False(t, hasRef)
	})

	t.Run("Invalid input never reaches the network", func(t *testing.T) {
		server, _, calls := newProviderServer(t, http.StatusOK, `{}`)
		ps := newTestPaystack(server.URL)

		_, err := ps.InitializeCharge(ctx, gwport.InitializeRequest{Email: "", Amount: 5000})
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)

		_, err = ps.InitializeCharge(ctx, gwport.InitializeRequest{Email: "ada@example.com", Amount: 0})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		assert.Equal(t, int32(0), atomic.LoadInt32(calls))
	})

	t.Run("Non-2xx becomes a gateway error carrying the body", func(t *testing.T) {
		server, _, _ := newProviderServer(t, http.StatusUnauthorized, `{"status":false,"message":"Invalid key"}`)
		ps := newTestPaystack(server.URL)

		_, err := ps.InitializeCharge(ctx, gwport.InitializeRequest{Email: "ada@example.com", Amount: 5000})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrGatewayTransport)

		var gwErr *errs.GatewayError
		require.True(t, errors.As(err, &gwErr))
		assert.Equal(t, PaystackName, gwErr.Gateway)
		assert.Equal(t, gwport.OpInitializeCharge, gwErr.Operation)
		assert.Equal(t, http.StatusUnauthorized, gwErr.StatusCode)
		assert.Contains(t, gwErr.Body, "Invalid key")
	})

	t.Run("Undecodable body", func(t *testing.T) {
		server, _, _ := newProviderServer(t, http.StatusOK, `<html>maintenance</html>`)
		ps := newTestPaystack(server.URL)

		_, err := ps.InitializeCharge(ctx, gwport.InitializeRequest{Email: "ada@example.com", Amount: 5000})

		assert.ErrorIs(t, err, errs.ErrGatewayTransport)
	})
}

func TestPaystackCharge(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK,
		`{"status":true,"message":"Charge attempted","data":{"status":"send_otp","reference":"txn_0a1b2c3d4e"}}`)
	ps := newTestPaystack(server.URL)

	resp, err := ps.Charge(context.Background(), gwport.ChargeRequest{
		Reference: "txn_0a1b2c3d4e",
		Email:     "ada@example.com",
		Amount:    5000,
		Bank:      map[string]any{"code": "057", "account_number": "0000000000"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/charge", recorded.Path)
	assert.Equal(t, map[string]any{"code": "057", "account_number": "0000000000"}, recorded.Body["bank"])
	_, hasCard := recorded.Body["card"]
	assert.False(t, hasCard)

	data := resp["data"].(map[string]any)
	assert.Equal(t, "send_otp", data["status"])
}

func TestPaystackVerifyPayment(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK, `{"status":true,"data":{"status":"success","amount":5000}}`)
	ps := newTestPaystack(server.URL)

	resp, err := ps.VerifyPayment(context.Background(), "txn_0a1b2c3d4e")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, recorded.Method)
	assert.Equal(t, "/transaction/verify/txn_0a1b2c3d4e", recorded.Path)
	assert.Equal(t, "Bearer sk_test_123", recorded.Auth)
	assert.Nil(t, recorded.Body)
	assert.Equal(t, "success", resp["data"].(map[string]any)["status"])
}

func TestPaystackSubmitOTP(t *testing.T) {
	server, recorded, _ := newProviderServer(t, http.StatusOK, `{"status":true,"data":{"status":"success"}}`)
	ps := newTestPaystack(server.URL)

	_, err := ps.SubmitOTP(context.Background(), "123456", "txn_0a1b2c3d4e")

	require.NoError(t, err)
	assert.Equal(t, "/charge/submit_otp", recorded.Path)
	assert.Equal(t, "123456", recorded.Body["otp"])
	assert.Equal(t, "txn_0a1b2c3d4e", recorded.Body["reference"])
}

func TestGatewayTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	ps := NewPaystackGateway(ProviderConfig{
		SecretKey: "sk_test_123",
		BaseURL:   server.URL,
		Timeout:   50 * time.Millisecond,
	}, logger.NewNoopLogger())

	start := time.Now()
	_, err := ps.VerifyPayment(context.Background(), "txn_0a1b2c3d4e")

	assert.ErrorIs(t, err, errs.ErrGatewayTransport)
	assert.Less(t, time.Since(start), 900*time.Millisecond)

	var gwErr *errs.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Zero(t, gwErr.StatusCode)
}

func TestGatewayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	_, err := newTestPaystack(baseURL).VerifyPayment(context.Background(), "txn_0a1b2c3d4e")

	assert.ErrorIs(t, err, errs.ErrGatewayTransport)
}

func TestNewAPIClientDefaults(t *testing.T) {
	c := newAPIClient(PaystackName, ProviderConfig{BaseURL: "https://api.paystack.co/"}, logger.NewNoopLogger())

	assert.Equal(t, "https://api.paystack.co", c.baseURL)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}
