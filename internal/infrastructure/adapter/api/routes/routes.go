package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/security"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth        *handler.AuthHandler
	Transaction *handler.TransactionHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	tokens security.TokenIssuer,
	logger coreport.Logger,
) {
	router.GET("/healthz", handlers.Health.Health)
	router.NoRoute(middleware.NoRoute())

	api := router.Group("/api")
	requireAuth := middleware.Auth(tokens, logger)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
		authRoutes.GET("/me", requireAuth, handlers.Auth.Me)
	}

	txnRoutes := api.Group("/transactions", requireAuth)
	{
		txnRoutes.POST("/", handlers.Transaction.Create)
		txnRoutes.GET("/", handlers.Transaction.List)
		txnRoutes.POST("/initiate", handlers.Transaction.Initiate)
		txnRoutes.GET("/verify/:reference", handlers.Transaction.Verify)
		txnRoutes.POST("/submit-otp", handlers.Transaction.SubmitOTP)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}

// NewHandler wraps the router with the middlewares that run outside gin
func NewHandler(router *gin.Engine, allowedOrigins []string) http.Handler {
	return middleware.CORS(allowedOrigins)(router)
}
