package auth

import (
	"context"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
)

// Me returns the authenticated user
func (a *AuthUseCase) Me(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		a.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return user, nil
}
