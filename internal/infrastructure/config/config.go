package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Gateways    GatewaysConfig `mapstructure:"gateways"`
	Events      EventsConfig   `mapstructure:"events"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig contains token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	Issuer     string        `mapstructure:"issuer"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"`
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// ProviderConfig holds credentials for one payment gateway
type ProviderConfig struct {
	SecretKey    string `mapstructure:"secretKey"`
	BaseURL      string `mapstructure:"baseURL"`
	ContractCode string `mapstructure:"contractCode"`
	Currency     string `mapstructure:"currency"`
}

// GatewaysConfig contains payment gateway settings.
// A provider without a secret key is not registered.
type GatewaysConfig struct {
	Timeout    time.Duration  `mapstructure:"timeout"`
	Paystack   ProviderConfig `mapstructure:"paystack"`
	Moniepoint ProviderConfig `mapstructure:"moniepoint"`
}

// EventsConfig contains status-change publishing settings
type EventsConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Brokers        []string      `mapstructure:"brokers"`
	Topic          string        `mapstructure:"topic"`
	ClientID       string        `mapstructure:"clientID"`
	MaxRetries     int           `mapstructure:"maxRetries"`
	ConnectRetries int           `mapstructure:"connectRetries"`
	RetryDelay     time.Duration `mapstructure:"retryDelay"`
	SendTimeout    time.Duration `mapstructure:"sendTimeout"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks settings the application cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if c.Gateways.Timeout < 0 {
		return errors.New("gateways.timeout must not be negative")
	}
	if c.Events.SendTimeout < 0 {
		return errors.New("events.sendTimeout must not be negative")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return errors.New("events.brokers is required when events are enabled")
	}
	return nil
}
