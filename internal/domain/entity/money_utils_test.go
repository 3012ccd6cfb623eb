package entity

import (
	"testing"

	"github.com/shopspring/decimal"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	t.Run("Positive amounts", func(t *testing.T) {
		for _, amount := range []int64{1, 100, 5000, 123456789} {
			assert.NoError(t, ValidateAmount(amount))
		}
	})

	t.Run("Zero and negative amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -1, -5000} {
			err := ValidateAmount(amount)
			assert.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})
}

func TestFormatMinorUnits(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{500000, "5000.00"},
		{5000, "50.00"},
		{1015, "10.15"},
		{5, "0.05"},
		{0, "0.00"},
		{-250, "-2.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatMinorUnits(tc.input))
		})
	}
}

func TestMajorUnits(t *testing.T) {
	assert.True(t, MajorUnits(123456).Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, MajorUnits(MinorUnitsPerMajor).Equal(decimal.NewFromInt(1)))
	assert.True(t, MajorUnits(1).Mul(decimal.NewFromInt(MinorUnitsPerMajor)).Equal(decimal.NewFromInt(1)))
}
