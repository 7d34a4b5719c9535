package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tidylist/internal/models"
)

// GORMTaskRepository is a GORM implementation of TaskRepository.
type GORMTaskRepository struct {
	db *gorm.DB
}

// NewGORMTaskRepository creates a new instance of GORMTaskRepository.
func NewGORMTaskRepository(db *gorm.DB) *GORMTaskRepository {
	return &GORMTaskRepository{db: db}
}

// Create inserts a new task, generating an id when none is set.
func (r *GORMTaskRepository) Create(task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if err := r.db.Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetAll retrieves every task owned by the user.
func (r *GORMTaskRepository) GetAll(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves the user's task by id, (nil, nil) when absent.
func (r *GORMTaskRepository) GetByID(userID, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task by id: %w", err)
	}
	return &task, nil
}

// GetByName retrieves the user's task by name, (nil, nil) when absent.
func (r *GORMTaskRepository) GetByName(userID, name string) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "user_id = ? AND name = ?", userID, name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task by name: %w", err)
	}
	return &task, nil
}

// GetByCategory retrieves the user's tasks under the category. An empty
// result is not an error.
func (r *GORMTaskRepository) GetByCategory(userID, categoryID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks, "user_id = ? AND category_id = ?", userID, categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to get tasks by category: %w", err)
	}
	return tasks, nil
}

// Update saves the full task record.
func (r *GORMTaskRepository) Update(task *models.Task) error {
	res := r.db.Save(task)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update task: %w", res.Error)
	}
	return nil
}

// Delete removes the user's task by id.
func (r *GORMTaskRepository) Delete(userID, id string) error {
	if err := r.db.Delete(&models.Task{}, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteByCategory removes every task of the user under the category and
// reports how many rows went away.
func (r *GORMTaskRepository) DeleteByCategory(userID, categoryID string) (int64, error) {
	res := r.db.Delete(&models.Task{}, "user_id = ? AND category_id = ?", userID, categoryID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete tasks by category: %w", res.Error)
	}
	return res.RowsAffected, nil
}
