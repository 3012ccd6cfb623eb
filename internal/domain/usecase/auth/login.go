package auth

import (
	"context"
	"errors"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
)

// Login checks credentials and issues a bearer token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			a.logger.Warn("Login attempt for unknown email", map[string]any{
				"email": maskEmail(email),
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Warn("Login attempt with wrong password", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Failed to issue access token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	a.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return &usecase.LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
