package userRepo

import "avira/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateTokenHash stores the hash of the active session token.
	UpdateTokenHash(id, tokenHash string) error
	// UpdateFCMToken stores the device push token.
	UpdateFCMToken(id, fcmToken string) error
}
