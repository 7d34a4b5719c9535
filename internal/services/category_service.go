package services

import (
	"errors"
	"fmt"
	"strconv"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
)

const categoryTakenMessage = "this category has already been added"

// CategoryService handles business logic for a user's categories. Removing a
// category also removes its tasks, so the service depends on the task
// repository as well.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	taskRepo     repositories.TaskRepository
	events       EventPublisher
}

// NewCategoryService creates a new CategoryService. events may be nil.
func NewCategoryService(categoryRepo repositories.CategoryRepository, taskRepo repositories.TaskRepository, events EventPublisher) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
		events:       events,
	}
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name   string
	UserID string
}

// UpdateCategoryInput is a partial patch; nil fields are left untouched.
type UpdateCategoryInput struct {
	ID     string
	UserID string
	Name   *string
}

// existCategory resolves the user's category or reports not-found.
func (s *CategoryService) existCategory(userID, id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to look up category", err)
	}
	if category == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("category not found with id: %s", id))
	}
	return category, nil
}

// Create adds a category, rejecting a name the user already has. The
// (name, userId) unique index backs the pre-check under concurrent requests.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	existing, err := s.categoryRepo.GetByName(input.UserID, input.Name)
	if err != nil {
		return nil, apperrors.Internal("failed to look up category", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(categoryTakenMessage)
	}

	category := &models.Category{
		Name:   input.Name,
		UserID: input.UserID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(categoryTakenMessage)
		}
		return nil, apperrors.Internal("failed to create category", err)
	}
	return category, nil
}

// FindAll returns every category owned by the user.
func (s *CategoryService) FindAll(userID string) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to get categories", err)
	}
	return categories, nil
}

// FindOne returns the user's category by id.
func (s *CategoryService) FindOne(userID, id string) (*models.Category, error) {
	return s.existCategory(userID, id)
}

// Update applies a partial patch to the user's category.
func (s *CategoryService) Update(input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.existCategory(input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(categoryTakenMessage)
		}
		return nil, apperrors.Internal("failed to update category", err)
	}
	return category, nil
}

// Remove deletes the user's category together with its tasks and returns the
// removed category.
func (s *CategoryService) Remove(userID, id string) (*models.Category, error) {
	category, err := s.existCategory(userID, id)
	if err != nil {
		return nil, err
	}

	removedTasks, err := s.taskRepo.DeleteByCategory(userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to delete category tasks", err)
	}
	if err := s.categoryRepo.Delete(userID, id); err != nil {
		return nil, apperrors.Internal("failed to delete category", err)
	}

	publishEvent(s.events, "category.deleted", map[string]string{
		"categoryId":   category.ID,
		"userId":       category.UserID,
		"removedTasks": strconv.FormatInt(removedTasks, 10),
	})
	return category, nil
}
