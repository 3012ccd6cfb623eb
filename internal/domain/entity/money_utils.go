package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
)

// MinorUnitsPerMajor is the number of minor units (kobo) in one major unit (naira)
const MinorUnitsPerMajor = 100

// ValidateAmount checks that an amount in minor units is positive
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// MajorUnits returns an amount in minor units as an exact major-unit decimal
func MajorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

// FormatMinorUnits converts an integer amount in minor units to a decimal string
// For example:
// - 500000 becomes "5000.00"
// - 5 becomes "0.05"
func FormatMinorUnits(amount int64) string {
	return MajorUnits(amount).StringFixed(2)
}
