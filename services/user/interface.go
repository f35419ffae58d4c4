package user

import (
	"context"

	"avira/models"
)

// UserService handles account registration and session management.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error)
	RevokeToken(ctx context.Context, userID string) error
	GetUserByID(userID string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
}
