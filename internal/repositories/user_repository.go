package repositories

import "tidylist/internal/models"

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}
