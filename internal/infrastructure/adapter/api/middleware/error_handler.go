package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns the error envelope
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(err),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   domainerr.ErrInternalServer.Error(),
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
					Status:  http.StatusInternalServerError,
				})
			}
		}()

		c.Next()
	}
}

// NoRoute answers unknown paths with the error envelope
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "route not found",
			Code:    domainerr.CodeNotFound,
			Message: fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path),
			Status:  http.StatusNotFound,
		})
	}
}
