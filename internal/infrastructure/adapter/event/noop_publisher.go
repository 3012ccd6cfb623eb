package event

import (
	"context"

	eventport "github.com/romeopeter/payment-orchestrator/internal/domain/port/event"
)

// NoopPublisher drops events; used when no broker is configured
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing
func NewNoopPublisher() eventport.Publisher {
	return &NoopPublisher{}
}

// PublishStatusChanged discards the event
func (p *NoopPublisher) PublishStatusChanged(context.Context, eventport.StatusChanged) error {
	return nil
}

// Close does nothing
func (p *NoopPublisher) Close() error {
	return nil
}
