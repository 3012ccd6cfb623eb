package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PO"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envOverrides maps environment variables to config keys.
// Secrets are expected to arrive this way rather than from the yaml file.
var envOverrides = map[string]string{
	"PO_DB_HOST":               "database.host",
	"PO_DB_PORT":               "database.port",
	"PO_DB_USERNAME":           "database.username",
	"PO_DB_PASSWORD":           "database.password",
	"PO_DB_NAME":               "database.database",
	"PO_DB_SSL_MODE":           "database.sslMode",
	"PO_SERVER_PORT":           "server.port",
	"PO_LOGGER_LEVEL":          "logger.level",
	"PO_JWT_SECRET":            "auth.jwtSecret",
	"PO_PAYSTACK_SECRET_KEY":   "gateways.paystack.secretKey",
	"PO_PAYSTACK_BASE_URL":     "gateways.paystack.baseURL",
	"PO_MONIEPOINT_SECRET_KEY": "gateways.moniepoint.secretKey",
	"PO_MONIEPOINT_BASE_URL":   "gateways.moniepoint.baseURL",
	"PO_MONIEPOINT_CONTRACT":   "gateways.moniepoint.contractCode",
	"PO_EVENTS_ENABLED":        "events.enabled",
	"PO_EVENTS_TOPIC":          "events.topic",
	"PO_EVENTS_CLIENT_ID":      "events.clientID",
}

// LoadConfig loads configuration for the environment named by PO_ENV
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first path that has it, applies
// defaults and environment overrides, and validates the result.
// A missing file is not an error; defaults and environment still apply.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "45s") // gateway calls can take up to gateways.timeout
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")

	v.SetDefault("logger.level", "info")

	v.SetDefault("auth.issuer", "payment-orchestrator")
	v.SetDefault("auth.tokenTTL", "24h")
	v.SetDefault("auth.bcryptCost", 12)

	v.SetDefault("gateways.timeout", "30s")
	v.SetDefault("gateways.paystack.baseURL", "https://api.paystack.co")
	v.SetDefault("gateways.moniepoint.baseURL", "https://api.monnify.com/api/v1")
	v.SetDefault("gateways.moniepoint.currency", "NGN")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.brokers", []string{"localhost:9092"})
	v.SetDefault("events.topic", "transaction.status_changed")
	v.SetDefault("events.clientID", "payment-orchestrator")
	v.SetDefault("events.maxRetries", 5)
	v.SetDefault("events.connectRetries", 5)
	v.SetDefault("events.retryDelay", "2s")
	v.SetDefault("events.sendTimeout", "5s")
}

// getEnvironment determines the environment to use based on PO_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("PO_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	// Comma separated list
	if brokers := os.Getenv("PO_EVENTS_BROKERS"); brokers != "" {
		v.Set("events.brokers", splitList(brokers))
	}
	if origins := os.Getenv("PO_SERVER_ALLOWED_ORIGINS"); origins != "" {
		v.Set("server.allowedOrigins", splitList(origins))
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
