package transaction

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/event"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/persistence"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
)

// InternalGatewayRefKey is the metadata key carrying our reference to the gateway
const InternalGatewayRefKey = "internal_gateway_ref"

// maxReferenceAttempts bounds regeneration when a generated reference collides
const maxReferenceAttempts = 3

// Service implements usecase.TransactionUseCase.
// It creates transactions, drives gateway calls and writes back the status each gateway reports.
type Service struct {
	transactionRepo persistence.TransactionRepository
	userRepo        persistence.UserRepository
	gateways        gateway.Resolver
	references      coreport.ReferenceGenerator
	publisher       event.Publisher
	validator       *TransactionValidator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	gateways gateway.Resolver,
	references coreport.ReferenceGenerator,
	publisher event.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		gateways:        gateways,
		references:      references,
		publisher:       publisher,
		validator:       NewTransactionValidator(),
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// Create persists a pending transaction without contacting the gateway
func (s *Service) Create(
	ctx context.Context,
	customerID uint64,
	req usecase.CreateTransactionRequest,
) (*entity.Transaction, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	gw, err := s.gateways.Resolve(req.Gateway)
	if err != nil {
		return nil, err
	}

	return s.createPending(ctx, customerID, req.Amount, gw.Name(), req.Metadata)
}

// Initiate creates a pending transaction and starts a charge on its gateway.
// A request carrying bank or card details goes through the direct charge path.
func (s *Service) Initiate(
	ctx context.Context,
	customerID uint64,
	req usecase.InitiateRequest,
) (*usecase.ReconciliationResult, error) {
	if err := s.validator.ValidateInitiate(req); err != nil {
		return nil, err
	}

	gw, err := s.gateways.Resolve(req.Gateway)
	if err != nil {
		return nil, err
	}

	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateCustomerEmail(customer.Email); err != nil {
		return nil, err
	}

	txn, err := s.createPending(ctx, customerID, req.Amount, gw.Name(), req.Metadata)
	if err != nil {
		return nil, err
	}

	gatewayMetadata := make(map[string]any, len(txn.Metadata)+1)
	maps.Copy(gatewayMetadata, txn.Metadata)
	gatewayMetadata[InternalGatewayRefKey] = txn.GatewayRef

	var (
		resp gateway.Response
		op   string
	)
	if len(req.Bank) > 0 || len(req.Card) > 0 {
		op = gateway.OpCharge
		resp, err = gw.Charge(ctx, gateway.ChargeRequest{
			Reference: txn.GatewayRef,
			Email:     customer.Email,
			Amount:    txn.Amount,
			Bank:      req.Bank,
			Card:      req.Card,
			Metadata:  gatewayMetadata,
		})
	} else {
		op = gateway.OpInitializeCharge
		resp, err = gw.InitializeCharge(ctx, gateway.InitializeRequest{
			Reference: txn.GatewayRef,
			Email:     customer.Email,
			Amount:    txn.Amount,
			Metadata:  gatewayMetadata,
		})
	}
	if err != nil {
		return nil, s.gatewayFailure(txn, op, err)
	}

	return s.finish(ctx, txn, resp)
}

// Verify queries the transaction's own gateway and records the reported status
func (s *Service) Verify(
	ctx context.Context,
	customerID uint64,
	reference string,
) (*usecase.ReconciliationResult, error) {
	if err := s.validator.ValidateReference(reference); err != nil {
		return nil, err
	}

	txn, gw, err := s.loadOwned(ctx, customerID, reference)
	if err != nil {
		return nil, err
	}

	resp, err := gw.VerifyPayment(ctx, txn.GatewayRef)
	if err != nil {
		return nil, s.gatewayFailure(txn, gateway.OpVerifyPayment, err)
	}

	return s.finish(ctx, txn, resp)
}

// SubmitOTP forwards an OTP to the transaction's own gateway and records the reported status
func (s *Service) SubmitOTP(
	ctx context.Context,
	customerID uint64,
	req usecase.SubmitOTPRequest,
) (*usecase.ReconciliationResult, error) {
	if err := s.validator.ValidateSubmitOTP(req); err != nil {
		return nil, err
	}

	txn, gw, err := s.loadOwned(ctx, customerID, req.Reference)
	if err != nil {
		return nil, err
	}

	resp, err := gw.SubmitOTP(ctx, req.OTP, txn.GatewayRef)
	if err != nil {
		return nil, s.gatewayFailure(txn, gateway.OpSubmitOTP, err)
	}

	return s.finish(ctx, txn, resp)
}

// List returns the customer's transactions, newest first
func (s *Service) List(ctx context.Context, customerID uint64) ([]*entity.Transaction, error) {
	if customerID == 0 {
		return nil, errs.ErrUnauthorized
	}
	return s.transactionRepo.ListByCustomer(ctx, customerID)
}

// createPending builds and stores a pending transaction under a fresh reference
func (s *Service) createPending(
	ctx context.Context,
	customerID uint64,
	amount int64,
	gatewayName string,
	metadata map[string]any,
) (*entity.Transaction, error) {
	for attempt := 1; ; attempt++ {
		txn, err := entity.NewTransaction(customerID, s.references.NewReference(), amount, gatewayName, metadata, s.timeProvider)
		if err != nil {
			return nil, err
		}

		err = s.transactionRepo.Create(ctx, txn)
		if err == nil {
			s.logger.Info("Transaction created", map[string]any{
				"gateway_ref": txn.GatewayRef,
				"customer_id": customerID,
				"gateway":     gatewayName,
				"amount":      amount,
			})
			return txn, nil
		}

		if !errors.Is(err, errs.ErrDuplicateReference) || attempt >= maxReferenceAttempts {
			return nil, err
		}

		s.logger.Warn("Generated reference already exists, regenerating", map[string]any{
			"gateway_ref": txn.GatewayRef,
			"attempt":     attempt,
		})
	}
}

// loadOwned fetches a transaction for its owner and resolves the gateway it was created on.
// A transaction owned by someone else is reported as not found.
func (s *Service) loadOwned(
	ctx context.Context,
	customerID uint64,
	reference string,
) (*entity.Transaction, gateway.Gateway, error) {
	txn, err := s.transactionRepo.GetByGatewayRef(ctx, reference)
	if err != nil {
		return nil, nil, err
	}

	if !txn.IsOwnedBy(customerID) {
		s.logger.Warn("Transaction requested by non-owner", map[string]any{
			"gateway_ref": reference,
			"customer_id": customerID,
		})
		return nil, nil, errs.ErrTransactionNotFound
	}

	// The stored gateway is server state, so a miss here is a configuration fault rather than bad input
	gw, err := s.gateways.Resolve(txn.Gateway)
	if err != nil {
		s.logger.Error("Stored transaction references an unregistered gateway", map[string]any{
			"gateway_ref": txn.GatewayRef,
			"gateway":     txn.Gateway,
			"error":       err.Error(),
		})
		return nil, nil, fmt.Errorf("%w: transaction %s uses %q", errs.ErrGatewayNotConfigured, txn.GatewayRef, txn.Gateway)
	}

	return txn, gw, nil
}

// finish reconciles a gateway response and packages the result
func (s *Service) finish(
	ctx context.Context,
	txn *entity.Transaction,
	resp gateway.Response,
) (*usecase.ReconciliationResult, error) {
	status, err := s.reconcile(ctx, txn, resp)
	if err != nil {
		return nil, err
	}

	return &usecase.ReconciliationResult{
		Transaction:     txn,
		GatewayStatus:   status,
		GatewayResponse: resp,
	}, nil
}

// gatewayFailure logs a failed gateway call and wraps it with transaction context.
// The stored status is left untouched.
func (s *Service) gatewayFailure(txn *entity.Transaction, op string, err error) error {
	txErr := errs.NewTransactionError(txn.GatewayRef, txn.CustomerID, txn.Gateway, op, err)

	var typed *errs.TransactionError
	if errors.As(txErr, &typed) {
		s.logger.Error("Gateway call failed", typed.LogFields())
	}
	return txErr
}
