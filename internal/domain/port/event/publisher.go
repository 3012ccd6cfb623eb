package event

import (
	"context"
	"time"
)

// TopicStatusChanged is the topic status change events are published to
const TopicStatusChanged = "transaction.status_changed"

// StatusChanged is emitted after a gateway-reported status is written
type StatusChanged struct {
	GatewayRef     string    `json:"gateway_ref"`
	Gateway        string    `json:"gateway"`
	CustomerID     uint64    `json:"customer_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher delivers status change events to downstream consumers
type Publisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
	Close() error
}
