package transaction

import (
	"testing"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestValidateInitiate(t *testing.T) {
	v := NewTransactionValidator()

	tests := []struct {
		name          string
		req           usecase.InitiateRequest
		expectedError error
	}{
		{"Valid request", usecase.InitiateRequest{Amount: 5000, Gateway: "paystack"}, nil},
		{"Valid with bank", usecase.InitiateRequest{Amount: 1, Gateway: "moniepoint", Bank: map[string]any{"code": "057"}}, nil},
		{"Zero amount", usecase.InitiateRequest{Amount: 0, Gateway: "paystack"}, errs.ErrInvalidAmount},
		{"Negative amount", usecase.InitiateRequest{Amount: -5, Gateway: "paystack"}, errs.ErrInvalidAmount},
		{"Missing gateway", usecase.InitiateRequest{Amount: 5000}, errs.ErrInvalidGateway},
		{"Whitespace gateway", usecase.InitiateRequest{Amount: 5000, Gateway: "   "}, errs.ErrInvalidGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInitiate(tt.req)
			if tt.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewTransactionValidator()

	assert.NoError(t, v.ValidateCreate(usecase.CreateTransactionRequest{Amount: 100, Gateway: "paystack"}))
	assert.ErrorIs(t, v.ValidateCreate(usecase.CreateTransactionRequest{Amount: 0, Gateway: "paystack"}), errs.ErrInvalidAmount)
	assert.ErrorIs(t, v.ValidateCreate(usecase.CreateTransactionRequest{Amount: 100}), errs.ErrInvalidGateway)
}

func TestValidateSubmitOTP(t *testing.T) {
	v := NewTransactionValidator()

	assert.NoError(t, v.ValidateSubmitOTP(usecase.SubmitOTPRequest{OTP: "123456", Reference: "txn_0a1b2c3d4e"}))

	err := v.ValidateSubmitOTP(usecase.SubmitOTPRequest{Reference: "txn_0a1b2c3d4e"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "otp")

	err = v.ValidateSubmitOTP(usecase.SubmitOTPRequest{OTP: "123456", Reference: " "})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "reference")
}

func TestValidateCustomerEmail(t *testing.T) {
	v := NewTransactionValidator()

	assert.NoError(t, v.ValidateCustomerEmail("ada@example.com"))
	assert.ErrorIs(t, v.ValidateCustomerEmail(""), errs.ErrInvalidEmail)
	assert.ErrorIs(t, v.ValidateCustomerEmail("not-an-email"), errs.ErrInvalidEmail)
}

func TestValidateReference(t *testing.T) {
	v := NewTransactionValidator()

	assert.NoError(t, v.ValidateReference("txn_0a1b2c3d4e"))
	assert.ErrorIs(t, v.ValidateReference(""), errs.ErrInvalidRequest)
}
