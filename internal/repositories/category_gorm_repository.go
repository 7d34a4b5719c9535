package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tidylist/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// Create inserts a new category, generating an id when none is set.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetAll retrieves every category owned by the user.
func (r *GORMCategoryRepository) GetAll(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves the user's category by id, (nil, nil) when absent.
func (r *GORMCategoryRepository) GetByID(userID, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return &category, nil
}

// GetByName retrieves the user's category by name, (nil, nil) when absent.
func (r *GORMCategoryRepository) GetByName(userID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "user_id = ? AND name = ?", userID, name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// Update saves the full category record.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	return nil
}

// Delete removes the user's category by id.
func (r *GORMCategoryRepository) Delete(userID, id string) error {
	if err := r.db.Delete(&models.Category{}, "user_id = ? AND id = ?", userID, id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
