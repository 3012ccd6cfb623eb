package transaction

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"

	"github.com/go-playground/validator/v10"
)

// TransactionValidator rejects malformed requests before any persistence or gateway call
type TransactionValidator struct {
	validate *validator.Validate
}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type chargeInput struct {
	Amount  int64  `validate:"gt=0"`
	Gateway string `validate:"required"`
}

type otpInput struct {
	OTP       string `validate:"required"`
	Reference string `validate:"required"`
}

type emailInput struct {
	Email string `validate:"required,email"`
}

// ValidateCreate validates a simulated create request
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) error {
	return v.check(chargeInput{
		Amount:  req.Amount,
		Gateway: strings.TrimSpace(req.Gateway),
	})
}

// ValidateInitiate validates a charge initiation request
func (v *TransactionValidator) ValidateInitiate(req usecase.InitiateRequest) error {
	return v.check(chargeInput{
		Amount:  req.Amount,
		Gateway: strings.TrimSpace(req.Gateway),
	})
}

// ValidateSubmitOTP validates an OTP submission
func (v *TransactionValidator) ValidateSubmitOTP(req usecase.SubmitOTPRequest) error {
	return v.check(otpInput{
		OTP:       strings.TrimSpace(req.OTP),
		Reference: strings.TrimSpace(req.Reference),
	})
}

// ValidateReference checks that a reference was supplied
func (v *TransactionValidator) ValidateReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: reference is required", errs.ErrInvalidRequest)
	}
	return nil
}

// ValidateCustomerEmail checks the email gateways require for a charge
func (v *TransactionValidator) ValidateCustomerEmail(email string) error {
	return v.check(emailInput{Email: email})
}

// check runs struct validation and maps the first failing field to a domain error
func (v *TransactionValidator) check(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "Amount":
		return errs.ErrInvalidAmount
	case "Gateway":
		return errs.ErrInvalidGateway
	case "Email":
		return errs.ErrInvalidEmail
	default:
		return fmt.Errorf("%w: %s is %s", errs.ErrInvalidRequest, strings.ToLower(fieldErr.Field()), fieldErr.Tag())
	}
}
