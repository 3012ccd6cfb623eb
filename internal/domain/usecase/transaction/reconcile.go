package transaction

import (
	"context"
	"strings"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/event"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/gateway"
)

// ExtractStatus reads the gateway-reported status at data.status.
// A missing, non-string or blank value reports false; callers treat that as "no change".
func ExtractStatus(resp gateway.Response) (string, bool) {
	if resp == nil {
		return "", false
	}

	data, ok := resp["data"].(map[string]any)
	if !ok {
		return "", false
	}

	status, ok := data["status"].(string)
	if !ok {
		return "", false
	}

	status = strings.TrimSpace(status)
	if status == "" {
		return "", false
	}
	return status, true
}

// reconcile writes the status found in resp to the store and announces the change.
// It returns the extracted status, or "" when the response carried none.
func (s *Service) reconcile(ctx context.Context, txn *entity.Transaction, resp gateway.Response) (string, error) {
	status, ok := ExtractStatus(resp)
	if !ok {
		s.logger.Debug("Gateway response carried no status, leaving transaction unchanged", map[string]any{
			"gateway_ref": txn.GatewayRef,
			"gateway":     txn.Gateway,
			"status":      txn.Status,
		})
		return "", nil
	}

	// A status the gateway already confirmed is written even if the caller went away.
	writeCtx := context.WithoutCancel(ctx)

	previous := txn.ApplyGatewayStatus(status, s.timeProvider)
	if err := s.transactionRepo.UpdateStatus(writeCtx, txn); err != nil {
		s.logger.Error("Failed to record gateway status", map[string]any{
			"gateway_ref":     txn.GatewayRef,
			"customer_id":     txn.CustomerID,
			"gateway":         txn.Gateway,
			"status":          status,
			"previous_status": previous,
			"error":           err.Error(),
		})
		return "", err
	}

	s.logger.Info("Transaction status reconciled", map[string]any{
		"gateway_ref":     txn.GatewayRef,
		"customer_id":     txn.CustomerID,
		"gateway":         txn.Gateway,
		"status":          status,
		"previous_status": previous,
	})

	evt := event.StatusChanged{
		GatewayRef:     txn.GatewayRef,
		Gateway:        txn.Gateway,
		CustomerID:     txn.CustomerID,
		Status:         status,
		PreviousStatus: string(previous),
		OccurredAt:     txn.UpdatedAt,
	}
	if err := s.publisher.PublishStatusChanged(writeCtx, evt); err != nil {
		s.logger.Warn("Failed to publish status change", map[string]any{
			"gateway_ref": txn.GatewayRef,
			"status":      status,
			"error":       err.Error(),
		})
	}

	return status, nil
}
