package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	eventport "github.com/romeopeter/payment-orchestrator/internal/domain/port/event"
	authUseCase "github.com/romeopeter/payment-orchestrator/internal/domain/usecase/auth"
	transactionUseCase "github.com/romeopeter/payment-orchestrator/internal/domain/usecase/transaction"

	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/routes"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/database"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/event"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/gateway"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/logger"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/reference"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/repository"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/security"
	timeProvider "github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/time"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction(), cfg.Logger.Level)
	defer appLogger.Flush()

	warnProductionConfig(cfg, appLogger)

	tp := timeProvider.NewRealTimeProvider()

	// Database
	dbManager := database.NewManager(database.ConfigFromApp(cfg), appLogger, tp)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Payment gateways
	registry, err := gateway.NewRegistryFromSettings(gatewaySettings(cfg.Gateways), appLogger)
	if err != nil {
		appLogger.Error("Failed to build gateway registry", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	publisher, err := newPublisher(context.Background(), cfg.Events, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create event publisher", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer publisher.Close()

	// Auth
	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token issuer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Use cases
	authUseCaseImpl := authUseCase.NewAuthUseCase(userRepo, hasher, tokens, tp, appLogger)
	transactionUseCaseImpl := transactionUseCase.NewTransactionService(
		transactionRepo,
		userRepo,
		registry,
		reference.NewUUIDGenerator(),
		publisher,
		tp,
		appLogger,
	)

	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(authUseCaseImpl, appLogger),
		Transaction: handler.NewTransactionHandler(transactionUseCaseImpl, appLogger),
		Health:      handler.NewHealthHandler(dbManager, registry.Names(), appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, handlers, tokens, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           routes.NewHandler(router, cfg.Server.AllowedOrigins),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"gateways": registry.Names(),
			"events":   cfg.Events.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Server stopped unexpectedly", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// gatewaySettings maps configuration onto adapter settings; both providers share one timeout
func gatewaySettings(cfg config.GatewaysConfig) gateway.Settings {
	return gateway.Settings{
		Paystack: gateway.ProviderConfig{
			SecretKey: cfg.Paystack.SecretKey,
			BaseURL:   cfg.Paystack.BaseURL,
			Timeout:   cfg.Timeout,
		},
		Moniepoint: gateway.MoniepointConfig{
			ProviderConfig: gateway.ProviderConfig{
				SecretKey: cfg.Moniepoint.SecretKey,
				BaseURL:   cfg.Moniepoint.BaseURL,
				Timeout:   cfg.Timeout,
			},
			ContractCode: cfg.Moniepoint.ContractCode,
			Currency:     cfg.Moniepoint.Currency,
		},
	}
}

// newPublisher connects to Kafka when events are enabled and otherwise discards events
func newPublisher(
	ctx context.Context,
	cfg config.EventsConfig,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (eventport.Publisher, error) {
	if !cfg.Enabled {
		appLogger.Info("Status change events disabled", nil)
		return event.NewNoopPublisher(), nil
	}

	return event.NewKafkaPublisher(ctx, event.KafkaConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		ClientID:       cfg.ClientID,
		MaxRetries:     cfg.MaxRetries,
		ConnectRetries: cfg.ConnectRetries,
		RetryDelay:     cfg.RetryDelay,
		SendTimeout:    cfg.SendTimeout,
	}, tp, appLogger)
}

// warnProductionConfig flags settings that work but are unsafe in production
func warnProductionConfig(cfg *config.Config, appLogger coreport.Logger) {
	if !cfg.IsProduction() {
		return
	}

	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full'")
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low")
	}
	if cfg.Server.WriteTimeout <= cfg.Gateways.Timeout+cfg.Events.SendTimeout {
		warnings = append(warnings, "server.writeTimeout should exceed gateways.timeout plus events.sendTimeout")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
	}

	if len(warnings) > 0 {
		appLogger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
}
