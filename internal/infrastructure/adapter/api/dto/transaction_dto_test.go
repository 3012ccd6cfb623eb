package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTransaction(t *testing.T) {
	created := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	resp := FromTransaction(&entity.Transaction{
		ID:         3,
		GatewayRef: "txn_0a1b2c3d4e",
		Amount:     123456,
		Gateway:    "moniepoint",
		Status:     entity.StatusSuccess,
		CustomerID: 9,
		CreatedAt:  created,
		UpdatedAt:  created,
	})

	assert.Equal(t, "txn_0a1b2c3d4e", resp.GatewayRef)
	assert.Equal(t, "1234.56", resp.AmountDisplay)
	assert.Equal(t, "success", resp.Status)
	assert.NotNil(t, resp.Metadata)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"metadata":{}`)
	assert.NotContains(t, string(raw), "customer")
}

func TestFromTransactions_PreservesOrder(t *testing.T) {
	out := FromTransactions([]*entity.Transaction{
		{GatewayRef: "txn_b"},
		{GatewayRef: "txn_a"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "txn_b", out[0].GatewayRef)
	assert.Equal(t, "txn_a", out[1].GatewayRef)

	raw, err := json.Marshal(FromTransactions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFromReconciliation(t *testing.T) {
	txn := &entity.Transaction{GatewayRef: "txn_0a1b2c3d4e", Status: "send_otp"}

	t.Run("With gateway status", func(t *testing.T) {
		resp := FromReconciliation(&usecase.ReconciliationResult{
			Transaction:     txn,
			GatewayStatus:   "send_otp",
			GatewayResponse: gateway.Response{"data": map[string]any{"status": "send_otp"}},
		})

		require.NotNil(t, resp.GatewayStatus)
		assert.Equal(t, "send_otp", *resp.GatewayStatus)
		assert.Equal(t, "send_otp", resp.Status)
		assert.Equal(t, "txn_0a1b2c3d4e", resp.InternalGatewayRef)
	})

	t.Run("Without gateway status", func(t *testing.T) {
		resp := FromReconciliation(&usecase.ReconciliationResult{
			Transaction:     &entity.Transaction{GatewayRef: "txn_0a1b2c3d4e", Status: entity.StatusPending},
			GatewayResponse: gateway.Response{"requestSuccessful": true},
		})

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"gateway_status":null`)
		assert.Contains(t, string(raw), `"status":"pending"`)
	})
}

func TestSubmitOTPRequest_IgnoresGateway(t *testing.T) {
	var req SubmitOTPRequest
	require.NoError(t, json.Unmarshal([]byte(`{"otp":"123456","reference":"txn_x","gateway":"paystack"}`), &req))

	assert.Equal(t, usecase.SubmitOTPRequest{OTP: "123456", Reference: "txn_x"}, req.ToUseCase())
}

func TestFromLogin(t *testing.T) {
	expires := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)
	resp := FromLogin(&usecase.LoginResult{
		AccessToken: "jwt",
		ExpiresAt:   expires,
		User:        &entity.User{ID: 1, Email: "ada@example.com", PasswordHash: "hash"},
	})

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "jwt", resp.AccessToken)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}
