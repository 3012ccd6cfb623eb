package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	coreport "github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
	gwport "github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

const (
	// DefaultTimeout bounds every outbound gateway call when none is configured
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20
	maxLoggedBody    = 512
)

// ProviderConfig holds the credentials and endpoint of one provider
type ProviderConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// apiClient performs the single JSON exchange each adapter operation needs
type apiClient struct {
	name       string
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     coreport.Logger
}

func newAPIClient(name string, cfg ProviderConfig, logger coreport.Logger) *apiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &apiClient{
		name:       name,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(map[string]any{"gateway": name}),
	}
}

// do sends one request and returns the decoded JSON body.
// Transport failures, non-2xx answers and undecodable bodies become *errs.GatewayError.
func (c *apiClient) do(ctx context.Context, op, method, path string, payload any) (gwport.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.NewGatewayError(c.name, op, 0, "", fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.NewGatewayError(c.name, op, 0, "", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Gateway request failed", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		return nil, errs.NewGatewayError(c.name, op, 0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.NewGatewayError(c.name, op, resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Gateway returned non-success status", map[string]any{
			"operation":   op,
			"http_status": resp.StatusCode,
			"body":        truncate(raw),
		})
		return nil, errs.NewGatewayError(c.name, op, resp.StatusCode, truncate(raw), nil)
	}

	var out gwport.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.NewGatewayError(c.name, op, resp.StatusCode, truncate(raw), fmt.Errorf("decode response: %w", err))
	}
	if out == nil {
		out = gwport.Response{}
	}

	c.logger.Debug("Gateway call completed", map[string]any{
		"operation":   op,
		"http_status": resp.StatusCode,
	})

	return out, nil
}

func truncate(raw []byte) string {
	if len(raw) > maxLoggedBody {
		return string(raw[:maxLoggedBody]) + "..."
	}
	return string(raw)
}

// validateCharge rejects what no provider accepts, before any network call
func validateCharge(email string, amount int64) error {
	if strings.TrimSpace(email) == "" {
		return errs.ErrInvalidEmail
	}
	return entity.ValidateAmount(amount)
}
