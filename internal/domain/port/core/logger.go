package core

import "strings"

// LogLevel is the minimum severity a Logger emits
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "debug",
	LogLevelInfo:  "info",
	LogLevelWarn:  "warn",
	LogLevelError: "error",
}

// String returns the level name as written in configuration
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return "info"
}

// ParseLogLevel reads a configured level name; unknown names mean info
func ParseLogLevel(name string) LogLevel {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return LogLevelWarn
	}
	for level, n := range logLevelNames {
		if n == name {
			return level
		}
	}
	return LogLevelInfo
}

// Logger writes structured entries. Fields are key/value pairs;
// implementations must redact credentials such as otp, password and token.
type Logger interface {
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// With returns a child logger that adds fields to every entry.
	// The child shares its parent's level.
	With(fields map[string]any) Logger

	SetLevel(level LogLevel)
	GetLevel() LogLevel

	// Flush writes any buffered entries
	Flush() error
}
