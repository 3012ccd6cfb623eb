package usecase

import (
	"context"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
)

// LoginResult carries the bearer token issued on login
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUseCase defines registration and authentication
type AuthUseCase interface {
	// Register creates a user; a taken email yields ErrDuplicateUser
	Register(ctx context.Context, email, password string) (*entity.User, error)

	// Login checks credentials and issues a bearer token
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Me returns the authenticated user
	Me(ctx context.Context, userID uint64) (*entity.User, error)
}
