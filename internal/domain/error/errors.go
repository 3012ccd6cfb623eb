package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest     = 4000
	CodeInvalidAmount      = 4001
	CodeInvalidEmail       = 4002
	CodeInvalidGateway     = 4003
	CodeUnsupportedGateway = 4004
	CodeInvalidCredentials = 4010
	CodeUnauthorized       = 4011
	CodeNotFound           = 4040
	CodeDuplicateUser      = 4090
	CodeDuplicateReference = 4091

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeGatewayTransport     = 5020
	CodeGatewayNotConfigured = 5030
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when the amount is missing or not positive
	ErrInvalidAmount = errors.New("amount must be a positive integer in the smallest currency unit")

	// ErrInvalidEmail is returned when an email address is missing or malformed
	ErrInvalidEmail = errors.New("a valid email address is required")

	// ErrInvalidGateway is returned when no gateway name was supplied
	ErrInvalidGateway = errors.New("gateway is required")

	// ErrUnsupportedGateway is returned when the gateway name is not registered
	ErrUnsupportedGateway = errors.New("unsupported gateway")

	// ErrTransactionNotFound is returned when the transaction doesn't exist or isn't owned by the caller
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when the email is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateReference is returned when a gateway reference collides with a stored one
	ErrDuplicateReference = errors.New("gateway reference already exists")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGatewayTransport is returned when a payment gateway call fails
	ErrGatewayTransport = errors.New("payment gateway error")

	// ErrGatewayNotConfigured is returned when a stored transaction names a gateway this server no longer registers
	ErrGatewayNotConfigured = errors.New("gateway for stored transaction is not configured")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrGatewayNotConfigured):
		return CodeGatewayNotConfigured
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidGateway):
		return CodeInvalidGateway
	case errors.Is(err, ErrUnsupportedGateway):
		return CodeUnsupportedGateway
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrGatewayTransport):
		return CodeGatewayTransport
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status code returned to clients
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGatewayNotConfigured):
		return http.StatusServiceUnavailable
	case IsValidationError(err), errors.Is(err, ErrUnsupportedGateway):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrDuplicateReference):
		return http.StatusConflict
	case errors.Is(err, ErrGatewayTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GatewayError describes a failed exchange with a payment gateway
type GatewayError struct {
	Gateway    string
	Operation  string
	StatusCode int // HTTP status returned by the gateway, 0 when no response was received
	Body       string
	Err        error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s failed: http=%d: %s", e.Gateway, e.Operation, e.StatusCode, e.cause())
	}
	return fmt.Sprintf("%s %s failed: %s", e.Gateway, e.Operation, e.cause())
}

func (e *GatewayError) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Body != "" {
		return e.Body
	}
	return "unexpected response"
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is reports every GatewayError as a gateway transport fault
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayTransport
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"gateway":     e.Gateway,
		"operation":   e.Operation,
		"http_status": e.StatusCode,
		"body":        e.Body,
		"error":       e.cause(),
		"error_code":  CodeGatewayTransport,
	}
}

// NewGatewayError creates a detailed gateway transport error
func NewGatewayError(gateway, operation string, statusCode int, body string, err error) error {
	return &GatewayError{
		Gateway:    gateway,
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// TransactionError represents an error related to a reconciliation step
type TransactionError struct {
	GatewayRef string
	CustomerID uint64
	Gateway    string
	Operation  string
	Err        error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed for transaction %s (customer: %d, gateway: %s): %v",
		e.Operation, e.GatewayRef, e.CustomerID, e.Gateway, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "transaction_error",
		"gateway_ref": e.GatewayRef,
		"customer_id": e.CustomerID,
		"gateway":     e.Gateway,
		"operation":   e.Operation,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(gatewayRef string, customerID uint64, gateway, operation string, err error) error {
	return &TransactionError{
		GatewayRef: gatewayRef,
		CustomerID: customerID,
		Gateway:    gateway,
		Operation:  operation,
		Err:        err,
	}
}

// IsValidationError checks if the error is a request validation fault
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidGateway)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsGatewayError checks if the error came from a payment gateway exchange
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayTransport)
}

// IsDuplicateUserError checks if the error is a duplicate registration
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}
