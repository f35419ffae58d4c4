package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "avira/database/repository/user"
	"avira/models"
	"avira/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long an issued token stays valid server-side.
const sessionTTL = 72 * time.Hour

const sessionKeyPrefix = "session:"

var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *DefaultUserService) SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// issueSession signs a JWT and caches its hash so tokens can be revoked.
func (s *DefaultUserService) issueSession(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(user.ID, tokenHash); err != nil {
		return nil, err
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Set(ctx, sessionKeyPrefix+user.ID, tokenHash, sessionTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache session: %w", err)
		}
	}

	user.TokenHash = tokenHash
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		return err
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Del(ctx, sessionKeyPrefix+userID).Err(); err != nil {
			return fmt.Errorf("failed to clear cached session: %w", err)
		}
	}
	return nil
}

func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	return s.Repo.UpdateFCMToken(userID, token)
}

// SessionKey returns the auth-cache key holding a user's token hash.
func SessionKey(userID string) string {
	return sessionKeyPrefix + userID
}
