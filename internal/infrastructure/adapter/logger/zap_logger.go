package logger

import (
	"strings"

	"github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every log entry
const ServiceName = "payment-orchestrator"

// redactedKeys are field names whose values never reach the log output
var redactedKeys = map[string]bool{
	"otp":           true,
	"password":      true,
	"secret_key":    true,
	"token":         true,
	"authorization": true,
	"card":          true,
}

var zapLevels = map[core.LogLevel]zapcore.Level{
	core.LogLevelDebug: zapcore.DebugLevel,
	core.LogLevelInfo:  zapcore.InfoLevel,
	core.LogLevelWarn:  zapcore.WarnLevel,
	core.LogLevelError: zapcore.ErrorLevel,
}

// ZapLogger implements core.Logger on zap. Children created by With share the parent's AtomicLevel.
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
}

// NewZapLogger builds a JSON logger in production and a colored console logger otherwise
func NewZapLogger(isProduction bool, level string) core.Logger {
	var cfg zap.Config

	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	l := &ZapLogger{
		logger: zapLogger.With(zap.String("service", ServiceName)),
		atom:   cfg.Level,
	}
	l.SetLevel(core.ParseLogLevel(level))
	return l
}

// SetLevel changes the level for this logger and every logger sharing its AtomicLevel
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	zl, ok := zapLevels[level]
	if !ok {
		zl = zapcore.InfoLevel
	}
	l.atom.SetLevel(zl)
}

// GetLevel reports the current level
func (l *ZapLogger) GetLevel() core.LogLevel {
	current := l.atom.Level()
	for level, zl := range zapLevels {
		if zl == current {
			return level
		}
	}
	return core.LogLevelInfo
}

// With returns a child logger carrying fields on every entry
func (l *ZapLogger) With(fields map[string]any) core.Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{
		logger: l.logger.With(toZapFields(fields)...),
		atom:   l.atom,
	}
}

// toZapFields converts a field map, masking sensitive values
func toZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if redactedKeys[strings.ToLower(k)] {
			zapFields = append(zapFields, zap.String(k, "[REDACTED]"))
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, toZapFields(fields)...)
}

func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, toZapFields(fields)...)
}

func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, toZapFields(fields)...)
}

// Flush syncs the underlying writer
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
