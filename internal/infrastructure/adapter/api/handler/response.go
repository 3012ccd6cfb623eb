package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/romeopeter/payment-orchestrator/internal/infrastructure/adapter/api/middleware"
)

// respond writes a success envelope
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

// respondError maps a domain error to its HTTP status and writes the error envelope.
// Server-side failures are logged and their details withheld from the client.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := domainerr.HTTPStatus(err)

	message := err.Error()
	switch {
	case domainerr.IsGatewayError(err):
		message = "Payment gateway request failed"
	case status >= http.StatusInternalServerError:
		message = "Internal server error"
	}

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": middleware.RequestIDFrom(c),
			"error":      err.Error(),
		}
		var gwErr *domainerr.GatewayError
		if errors.As(err, &gwErr) {
			for k, v := range gwErr.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Error:   publicError(err, status),
		Code:    domainerr.ErrorCode(err),
		Message: message,
		Status:  status,
	})
}

// publicError names the error class without internal detail
func publicError(err error, status int) string {
	switch {
	case domainerr.IsGatewayError(err):
		return domainerr.ErrGatewayTransport.Error()
	case status >= http.StatusInternalServerError:
		return domainerr.ErrInternalServer.Error()
	case domainerr.IsValidationError(err):
		return domainerr.ErrInvalidRequest.Error()
	default:
		return http.StatusText(status)
	}
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, logger coreport.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Debug("Invalid request body", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		respondError(c, logger, fmt.Errorf("%w: invalid request format: %s", domainerr.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}

// customerID reads the authenticated customer; routes without Auth answer 401
func customerID(c *gin.Context, logger coreport.Logger) (uint64, bool) {
	id, ok := middleware.CustomerIDFrom(c)
	if !ok {
		respondError(c, logger, domainerr.ErrUnauthorized)
		return 0, false
	}
	return id, true
}
