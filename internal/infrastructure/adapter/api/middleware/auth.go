package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerr "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/security"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

const customerIDKey = "customer_id"

// Auth requires a valid bearer token and stores its subject as the customer id
func Auth(tokens security.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		customerID, err := tokens.Validate(token)
		if err != nil {
			logger.Debug("Rejected bearer token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": RequestIDFrom(c),
				"error":      err.Error(),
			})
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(customerIDKey, customerID)
		c.Next()
	}
}

// CustomerIDFrom returns the authenticated customer id set by Auth
func CustomerIDFrom(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(customerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok && id != 0
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   domainerr.ErrUnauthorized.Error(),
		Code:    domainerr.CodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
	})
}
