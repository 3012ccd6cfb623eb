package dto

import (
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/entity"
	"github.com/romeopeter/payment-orchestrator/internal/domain/port/usecase"
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public projection of a user; the password hash is never exposed
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FromUser projects a user entity for the API
func FromUser(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// FromLogin projects a login result for the API
func FromLogin(result *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   result.ExpiresAt,
		User:        FromUser(result.User),
	}
}
