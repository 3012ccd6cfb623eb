package logger

import (
	"testing"

	"github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	atom := zap.NewAtomicLevelAt(zap.DebugLevel)
	zcore, logs := observer.New(atom)
	return &ZapLogger{logger: zap.New(zcore), atom: atom}, logs
}

func TestZapLoggerSetLevelFilters(t *testing.T) {
	l, logs := observed(t)

	l.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.Debug("dropped", nil)
	l.Info("dropped", nil)
	l.Warn("kept", nil)
	l.Error("kept", nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestZapLoggerRedactsSensitiveFields(t *testing.T) {
	l, logs := observed(t)

	l.Info("otp submitted", map[string]any{
		"otp":         "123456",
		"Password":    "hunter22",
		"gateway_ref": "txn_abc",
	})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["otp"])
	assert.Equal(t, "[REDACTED]", fields["Password"])
	assert.Equal(t, "txn_abc", fields["gateway_ref"])
}

func TestZapLoggerWith(t *testing.T) {
	l, logs := observed(t)

	child := l.With(map[string]any{"gateway": "paystack", "token": "sk_live"})
	child.Info("charge initialised", map[string]any{"gateway_ref": "txn_abc"})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "paystack", fields["gateway"])
	assert.Equal(t, "txn_abc", fields["gateway_ref"])
	assert.Equal(t, "[REDACTED]", fields["token"])

	// The child follows level changes made on the parent
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, child.GetLevel())
	child.Warn("dropped", nil)
	assert.Equal(t, 1, logs.Len())

	assert.Same(t, l, l.With(nil))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.With(map[string]any{"k": "v"}).Info("nothing", nil)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.NoError(t, l.Flush())
}
