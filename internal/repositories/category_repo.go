package repositories

import "tidylist/internal/models"

// CategoryRepository defines the interface for category data access. All
// lookups are scoped to the owning user; (nil, nil) means no match.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetAll(userID string) ([]models.Category, error)
	GetByID(userID, id string) (*models.Category, error)
	GetByName(userID, name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(userID, id string) error
}
