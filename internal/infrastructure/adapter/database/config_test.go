package database

import (
	"testing"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "postgres"
	cfg.Password = "postgres"
	cfg.Database = "payments"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing host", func(c *Config) { c.Host = "" }, "host"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "port"},
		{"missing username", func(c *Config) { c.Username = "" }, "username"},
		{"missing database", func(c *Config) { c.Database = "" }, "database name"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "SSL mode"},
		{"no open conns", func(c *Config) { c.MaxOpenConns = 0 }, "max open"},
		{"no idle conns", func(c *Config) { c.MaxIdleConns = 0 }, "max idle"},
		{"no query timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"no attempts", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
		{"negative delay", func(c *Config) { c.RetryDelay = -time.Second }, "retry delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=payments sslmode=disable", cfg.DSN())
}

func TestConfigFromApp(t *testing.T) {
	conf := &config.Config{
		Database: config.DatabaseConfig{
			Host:          "db",
			Port:          "6543",
			Username:      "app",
			Password:      "secret",
			Database:      "orchestrator",
			SSLMode:       "require",
			MaxOpenConns:  40,
			QueryTimeout:  3 * time.Second,
			RetryAttempts: 5,
			RetryDelay:    2 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "error"},
	}

	dbConf := ConfigFromApp(conf)

	assert.Equal(t, "db", dbConf.Host)
	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, "app", dbConf.Username)
	assert.Equal(t, "orchestrator", dbConf.Database)
	assert.Equal(t, "require", dbConf.SSLMode)
	assert.Equal(t, 40, dbConf.MaxOpenConns)
	assert.Equal(t, 10, dbConf.MaxIdleConns)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, 5, dbConf.RetryAttempts)
	assert.Equal(t, 2*time.Second, dbConf.RetryDelay)
	assert.Equal(t, "error", dbConf.LogLevel)
	assert.NoError(t, dbConf.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
	assert.Equal(t, 6543, ParsePort(" 6543 "))
}
