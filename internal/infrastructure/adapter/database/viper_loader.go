package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/config"
)

// ConfigFromApp builds the connection settings from the loaded application config.
// Unset or non-positive values keep DefaultConfig's value; credentials are always taken as given.
func ConfigFromApp(conf *config.Config) *Config {
	db := conf.Database
	out := DefaultConfig()

	out.Host = db.Host
	out.Username = db.Username
	out.Password = db.Password
	out.Database = db.Database

	preferPositive(&out.Port, ParsePort(db.Port))
	preferPositive(&out.MaxOpenConns, db.MaxOpenConns)
	preferPositive(&out.MaxIdleConns, db.MaxIdleConns)
	preferPositive(&out.RetryAttempts, db.RetryAttempts)
	preferPositive(&out.ConnMaxLifetime, db.ConnMaxLifetime)
	preferPositive(&out.ConnMaxIdleTime, db.ConnMaxIdleTime)
	preferPositive(&out.QueryTimeout, db.QueryTimeout)
	preferPositive(&out.RetryDelay, db.RetryDelay)

	if db.SSLMode != "" {
		out.SSLMode = db.SSLMode
	}
	if conf.Logger.Level != "" {
		out.LogLevel = conf.Logger.Level
	}

	return out
}

func preferPositive[T int | time.Duration](dst *T, v T) {
	if v > 0 {
		*dst = v
	}
}

// ParsePort returns the TCP port in s, or 0 when s is not a valid port
func ParsePort(s string) int {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port <= 0 || port > 65535 {
		return 0
	}
	return port
}
