package logger

import (
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"go.uber.org/zap"
)

// NewNoopLogger creates a logger that discards everything. Used in tests.
func NewNoopLogger() core.Logger {
	return &ZapLogger{
		logger: zap.NewNop(),
		atom:   zap.NewAtomicLevelAt(zap.DebugLevel),
	}
}
