package repositories

import (
	"sync"

	"github.com/google/uuid"

	"tidylist/internal/models"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
type MockTaskRepository struct {
	tasks map[string]models.Task
	mu    sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		tasks: make(map[string]models.Task),
	}
}

// Create adds a new task, enforcing the (name, userId) uniqueness of the
// real database index.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.UserID == task.UserID && t.Name == task.Name {
			return ErrDuplicate
		}
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	r.tasks[task.ID] = *task
	return nil
}

// GetAll returns every task owned by the user.
func (r *MockTaskRepository) GetAll(userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

// GetByID returns the user's task by id, (nil, nil) when absent.
func (r *MockTaskRepository) GetByID(userID, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return &t, nil
}

// GetByName returns the user's task by name, (nil, nil) when absent.
func (r *MockTaskRepository) GetByName(userID, name string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.UserID == userID && t.Name == name {
			match := t
			return &match, nil
		}
	}
	return nil, nil
}

// GetByCategory returns the user's tasks under the category.
func (r *MockTaskRepository) GetByCategory(userID, categoryID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID && t.CategoryID == categoryID {
			result = append(result, t)
		}
	}
	return result, nil
}

// Update replaces an existing task.
func (r *MockTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = *task
	return nil
}

// Delete removes the user's task by id.
func (r *MockTaskRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[id]; ok && t.UserID == userID {
		delete(r.tasks, id)
	}
	return nil
}

// DeleteByCategory removes the user's tasks under the category.
func (r *MockTaskRepository) DeleteByCategory(userID, categoryID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, t := range r.tasks {
		if t.UserID == userID && t.CategoryID == categoryID {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed, nil
}
