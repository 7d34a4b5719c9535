package repositories

import "tidylist/internal/models"

// TaskRepository defines the interface for task data access. All lookups are
// scoped to the owning user; (nil, nil) means no match.
type TaskRepository interface {
	Create(task *models.Task) error
	GetAll(userID string) ([]models.Task, error)
	GetByID(userID, id string) (*models.Task, error)
	GetByName(userID, name string) (*models.Task, error)
	GetByCategory(userID, categoryID string) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(userID, id string) error
	DeleteByCategory(userID, categoryID string) (int64, error)
}
