package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType is the class of a failed statement, as far as the repositories care
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// Postgres SQLSTATE codes the repositories react to
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgIntegrityClass       = "23"
	pgConnectionClass      = "08"
)

// ErrorClassifier sorts driver errors into ErrorTypes.
// Postgres errors are classified by SQLSTATE; anything else falls back to message matching.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of err, or "" when it fits no class
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DuplicateKeyError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	return classifyMessage(strings.ToLower(err.Error()))
}

// IsDuplicateKeyError reports a unique-key violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}

func classifySQLState(code string) ErrorType {
	switch {
	case code == pgUniqueViolation:
		return DuplicateKeyError
	case strings.HasPrefix(code, pgIntegrityClass):
		return ConstraintError
	case code == pgSerializationFailure, code == pgDeadlockDetected, code == pgLockNotAvailable:
		return LockError
	case strings.HasPrefix(code, pgConnectionClass):
		return ConnectionError
	default:
		return ""
	}
}

func classifyMessage(msg string) ErrorType {
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return DuplicateKeyError
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "could not serialize access"),
		strings.Contains(msg, "lock timeout"):
		return LockError
	case strings.Contains(msg, "violates"), strings.Contains(msg, "constraint"):
		return ConstraintError
	case strings.Contains(msg, "connection"), strings.Contains(msg, "dial tcp"),
		strings.Contains(msg, "broken pipe"), strings.Contains(msg, "unexpected eof"):
		return ConnectionError
	default:
		return ""
	}
}

// translate maps a raw database error to a domain error.
// duplicate is returned for unique-key violations, since its meaning depends on the table.
func (c *ErrorClassifier) translate(err error, duplicate error) error {
	switch c.Classify(err) {
	case DuplicateKeyError:
		return duplicate
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}
