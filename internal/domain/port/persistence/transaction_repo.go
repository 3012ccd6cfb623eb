package persistence

import (
	"context"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
)

// TransactionRepository defines the Transaction Store used by reconciliation
type TransactionRepository interface {
	// Create saves a new pending transaction and fills in its ID
	//
	// Possible errors:
	// - ErrDuplicateReference: If a transaction with the same gateway reference exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByGatewayRef retrieves a transaction by its gateway reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given reference
	// - ErrDatabaseConnection: If database connection fails
	GetByGatewayRef(ctx context.Context, gatewayRef string) (*entity.Transaction, error)

	// ListByCustomer returns a customer's transactions ordered newest-created first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByCustomer(ctx context.Context, customerID uint64) ([]*entity.Transaction, error)

	// UpdateStatus writes the transaction's current status (last write wins)
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given reference
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, transaction *entity.Transaction) error
}
