package auth

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/persistence"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/security"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 8

// maxPasswordLength is the longest input bcrypt will hash
const maxPasswordLength = 72

// AuthUseCase implements registration and login
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenIssuer
	validate     *validator.Validate
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// validateCredentials checks registration input and maps failures to domain errors
func (a *AuthUseCase) validateCredentials(email, password string) error {
	err := a.validate.Struct(credentials{Email: email, Password: password})
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 && validationErrs[0].Field() == "Email" {
		return errs.ErrInvalidEmail
	}
	return fmt.Errorf("%w: password must be between %d and %d characters",
		errs.ErrInvalidRequest, MinPasswordLength, maxPasswordLength)
}

// maskEmail keeps the first character and the domain for logs
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
