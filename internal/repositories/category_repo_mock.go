package repositories

import (
	"sync"

	"github.com/google/uuid"

	"tidylist/internal/models"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

// Create adds a new category. The (name, userId) uniqueness of the real
// database index is enforced here too.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return ErrDuplicate
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

// GetAll returns every category owned by the user.
func (r *MockCategoryRepository) GetAll(userID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Category, 0)
	for _, c := range r.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetByID returns the user's category by id, (nil, nil) when absent.
func (r *MockCategoryRepository) GetByID(userID, id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	return &c, nil
}

// GetByName returns the user's category by name, (nil, nil) when absent.
func (r *MockCategoryRepository) GetByName(userID, name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.UserID == userID && c.Name == name {
			match := c
			return &match, nil
		}
	}
	return nil, nil
}

// Update replaces an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories[category.ID] = *category
	return nil
}

// Delete removes the user's category by id.
func (r *MockCategoryRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.categories[id]; ok && c.UserID == userID {
		delete(r.categories, id)
	}
	return nil
}
