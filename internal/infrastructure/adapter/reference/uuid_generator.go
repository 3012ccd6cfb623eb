package reference

import (
	"strings"

	"github.com/google/uuid"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
)

const hexLength = 10

// UUIDGenerator derives gateway references from random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new reference generator
func NewUUIDGenerator() core.ReferenceGenerator {
	return &UUIDGenerator{}
}

// NewReference returns txn_ followed by the first 10 hex digits of a fresh UUID
func (g *UUIDGenerator) NewReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return entity.GatewayRefPrefix + hex[:hexLength]
}
