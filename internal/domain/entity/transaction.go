package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	tport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
)

// TransactionStatus is the status last reported by the gateway.
// Gateways may report statuses beyond the constants below; they are stored verbatim.
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// GatewayRefPrefix is prepended to every generated gateway reference
const GatewayRefPrefix = "txn_"

var gatewayRefPattern = regexp.MustCompile(`^txn_[a-f0-9]{10}$`)

// Transaction is one payment attempt against a single gateway
type Transaction struct {
	ID         uint64            // Database identifier
	GatewayRef string            // Unique external handle, immutable
	Amount     int64             // Smallest currency unit (kobo), immutable
	Gateway    string            // Registered gateway name, immutable
	Status     TransactionStatus // Written only by reconciliation
	Metadata   map[string]any    // Opaque payload passed to the gateway
	CustomerID uint64            // Owner
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a pending transaction with basic validation
func NewTransaction(
	customerID uint64,
	gatewayRef string,
	amount int64,
	gateway string,
	metadata map[string]any,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("%w: customer id is required", errs.ErrInvalidRequest)
	}
	if !IsValidGatewayRef(gatewayRef) {
		return nil, fmt.Errorf("%w: malformed gateway reference %q", errs.ErrInvalidRequest, gatewayRef)
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(gateway) == "" {
		return nil, errs.ErrInvalidGateway
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	now := timeProvider.Now()
	return &Transaction{
		GatewayRef: gatewayRef,
		Amount:     amount,
		Gateway:    gateway,
		Status:     StatusPending,
		Metadata:   metadata,
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyGatewayStatus records a gateway-reported status and returns the previous one.
// Re-writing the current status is allowed; the last write wins.
func (t *Transaction) ApplyGatewayStatus(status string, timeProvider tport.TimeProvider) TransactionStatus {
	previous := t.Status
	t.Status = TransactionStatus(status)
	t.UpdatedAt = timeProvider.Now()
	return previous
}

// IsOwnedBy reports whether the transaction belongs to the given customer
func (t *Transaction) IsOwnedBy(customerID uint64) bool {
	return customerID != 0 && t.CustomerID == customerID
}

// IsValidGatewayRef checks the txn_<10 hex> reference format
func IsValidGatewayRef(ref string) bool {
	return gatewayRefPattern.MatchString(ref)
}
