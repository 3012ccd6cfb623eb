package auth

import (
	"context"
	"errors"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	errs "github.com/romeopeter/payment-orchestrator/internal/domain/error"
)

// Register creates a new user with a hashed password
func (a *AuthUseCase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if err := a.validateCredentials(email, password); err != nil {
		return nil, err
	}

	// Check if the email is already taken
	_, err := a.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errs.ErrDuplicateUser
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"email": maskEmail(email),
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(email, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique index still catches a concurrent registration of the same email
	if err := a.userRepo.Create(ctx, user); err != nil {
		a.logger.Error("Failed to create user", map[string]any{
			"email": maskEmail(email),
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  maskEmail(email),
	})

	return user, nil
}
