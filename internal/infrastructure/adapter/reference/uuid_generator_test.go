package reference

import (
	"testing"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestNewReferenceFormat(t *testing.T) {
	gen := NewUUIDGenerator()

	for i := 0; i < 100; i++ {
		ref := gen.NewReference()
		assert.True(t, entity.IsValidGatewayRef(ref), ref)
	}
}

func TestNewReferenceUnique(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		ref := gen.NewReference()
		_, dup := seen[ref]
		assert.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}
