package services

import (
	"errors"
	"fmt"
	"time"

	"tidylist/internal/apperrors"
	"tidylist/internal/models"
	"tidylist/internal/repositories"
)

const taskTakenMessage = "this task has already been added"

// TaskService handles business logic for a user's tasks. Category references
// are validated against the category repository under the same user.
type TaskService struct {
	taskRepo     repositories.TaskRepository
	categoryRepo repositories.CategoryRepository
	events       EventPublisher
}

// NewTaskService creates a new TaskService. events may be nil.
func NewTaskService(taskRepo repositories.TaskRepository, categoryRepo repositories.CategoryRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		events:       events,
	}
}

// CreateTaskInput carries the fields for a new task.
type CreateTaskInput struct {
	Name        string
	Description string
	DueDate     *time.Time
	UserID      string
	CategoryID  string
}

// UpdateTaskInput is a partial patch; nil fields are left untouched.
type UpdateTaskInput struct {
	ID          string
	UserID      string
	Name        *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	CategoryID  *string
}

// existTask resolves the user's task or reports not-found.
func (s *TaskService) existTask(userID, id string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(userID, id)
	if err != nil {
		return nil, apperrors.Internal("failed to look up task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("task not found with id: %s", id))
	}
	return task, nil
}

// existCategory verifies the category belongs to the user. A category owned
// by a different user is indistinguishable from a missing one.
func (s *TaskService) existCategory(userID, categoryID string) error {
	category, err := s.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		return apperrors.Internal("failed to look up category", err)
	}
	if category == nil {
		return apperrors.NotFound(fmt.Sprintf("category with id: %s was not found", categoryID))
	}
	return nil
}

// Create adds a task. The duplicate-name check runs before the category
// check; both run before the write. The (name, userId) unique index backs the
// pre-check under concurrent requests.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	existing, err := s.taskRepo.GetByName(input.UserID, input.Name)
	if err != nil {
		return nil, apperrors.Internal("failed to look up task", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(taskTakenMessage)
	}

	if err := s.existCategory(input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		UserID:      input.UserID,
		CategoryID:  input.CategoryID,
	}
	if err := s.taskRepo.Create(task); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(taskTakenMessage)
		}
		return nil, apperrors.Internal("failed to create task", err)
	}

	publishEvent(s.events, "task.created", map[string]string{
		"taskId":     task.ID,
		"userId":     task.UserID,
		"categoryId": task.CategoryID,
		"name":       task.Name,
	})
	return task, nil
}

// FindAll returns every task owned by the user.
func (s *TaskService) FindAll(userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.GetAll(userID)
	if err != nil {
		return nil, apperrors.Internal("failed to get tasks", err)
	}
	return tasks, nil
}

// FindOne returns the user's task by id.
func (s *TaskService) FindOne(userID, id string) (*models.Task, error) {
	return s.existTask(userID, id)
}

// FindByCategory returns the user's tasks under the category. An unknown or
// emptied category yields an empty slice, not an error.
func (s *TaskService) FindByCategory(userID, categoryID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.GetByCategory(userID, categoryID)
	if err != nil {
		return nil, apperrors.Internal("failed to get tasks by category", err)
	}
	return tasks, nil
}

// Update applies a partial patch to the user's task. A new category reference
// must resolve under the same user.
func (s *TaskService) Update(input UpdateTaskInput) (*models.Task, error) {
	task, err := s.existTask(input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := s.existCategory(input.UserID, *input.CategoryID); err != nil {
			return nil, err
		}
		task.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Update(task); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict(taskTakenMessage)
		}
		return nil, apperrors.Internal("failed to update task", err)
	}
	return task, nil
}

// Remove deletes the user's task and returns the removed record.
func (s *TaskService) Remove(userID, id string) (*models.Task, error) {
	task, err := s.existTask(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.Delete(userID, id); err != nil {
		return nil, apperrors.Internal("failed to delete task", err)
	}
	return task, nil
}
