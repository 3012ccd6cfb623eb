package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "User registered", dto.FromUser(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", dto.FromLogin(result))
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := customerID(c, h.logger)
	if !ok {
		return
	}

	user, err := h.authUseCase.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Current user", dto.FromUser(user))
}
