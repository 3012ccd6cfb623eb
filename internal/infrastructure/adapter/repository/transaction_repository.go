package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/database"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retryConfig     database.RetryConfig
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retryConfig:     database.DefaultRetryConfig(),
	}
}

// transactionToModel converts a transaction entity to a database model
func transactionToModel(transaction *entity.Transaction) (model.Transaction, error) {
	metadata := transaction.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: metadata is not serializable: %s", errs.ErrInvalidRequest, err.Error())
	}

	return model.Transaction{
		ID:         transaction.ID,
		GatewayRef: transaction.GatewayRef,
		Amount:     transaction.Amount,
		Gateway:    transaction.Gateway,
		Status:     string(transaction.Status),
		Metadata:   datatypes.JSON(raw),
		CustomerID: transaction.CustomerID,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}, nil
}

// transactionToEntity converts a transaction model to an entity
func transactionToEntity(m *model.Transaction) (*entity.Transaction, error) {
	metadata := map[string]any{}
	if len(m.Metadata) > 0 && string(m.Metadata) != "null" {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("%w: corrupt metadata for %s: %s", errs.ErrInternalServer, m.GatewayRef, err.Error())
		}
	}

	return &entity.Transaction{
		ID:         m.ID,
		GatewayRef: m.GatewayRef,
		Amount:     m.Amount,
		Gateway:    m.Gateway,
		Status:     entity.TransactionStatus(m.Status),
		Metadata:   metadata,
		CustomerID: m.CustomerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// Create saves a new pending transaction and fills in its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"gateway_ref": transaction.GatewayRef,
		"customer_id": transaction.CustomerID,
	})

	transactionModel, err := transactionToModel(transaction)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Omit("Customer").Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate gateway reference detected", map[string]any{
				"gateway_ref": transaction.GatewayRef,
			})
			return errs.ErrDuplicateReference
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"gateway_ref": transaction.GatewayRef,
			"customer_id": transaction.CustomerID,
			"error":       result.Error.Error(),
		})
		return r.errorClassifier.translate(result.Error, errs.ErrDuplicateReference)
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created successfully", map[string]any{
		"gateway_ref": transaction.GatewayRef,
		"id":          transaction.ID,
	})
	return nil
}

// GetByGatewayRef retrieves a transaction by its gateway reference
func (r *TransactionRepository) GetByGatewayRef(ctx context.Context, gatewayRef string) (*entity.Transaction, error) {
	r.logger.Debug("Getting transaction by reference", map[string]any{
		"gateway_ref": gatewayRef,
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("gateway_ref = ?", gatewayRef).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Transaction not found", map[string]any{
				"gateway_ref": gatewayRef,
			})
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"gateway_ref": gatewayRef,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return transactionToEntity(&transactionModel)
}

// ListByCustomer returns a customer's transactions ordered newest-created first
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := customerTransactions(r.db.WithContext(ctx), customerID).Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"customer_id": customerID,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transaction, err := transactionToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	r.logger.Debug("Transactions listed", map[string]any{
		"customer_id": customerID,
		"count":       len(transactions),
	})
	return transactions, nil
}

// customerTransactions scopes a query to one customer's transactions, newest first.
// id breaks ties between rows created in the same instant.
func customerTransactions(db *gorm.DB, customerID uint64) *gorm.DB {
	return db.Model(&model.Transaction{}).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Order("id DESC")
}

// UpdateStatus writes the transaction's current status; the last write wins
func (r *TransactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Updating transaction status", map[string]any{
		"gateway_ref": transaction.GatewayRef,
		"status":      transaction.Status,
	})

	// A status the gateway already reported is worth a few retries on transient failures
	var rowsAffected int64
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		result := r.db.WithContext(ctx).Model(&model.Transaction{}).
			Where("gateway_ref = ?", transaction.GatewayRef).
			Updates(map[string]any{
				"status":     string(transaction.Status),
				"updated_at": transaction.UpdatedAt,
			})
		rowsAffected = result.RowsAffected
		return result.Error
	}, r.logger)

	if err != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"gateway_ref": transaction.GatewayRef,
			"error":       err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("Transaction not found during status update", map[string]any{
			"gateway_ref": transaction.GatewayRef,
		})
		return errs.ErrTransactionNotFound
	}

	return nil
}
