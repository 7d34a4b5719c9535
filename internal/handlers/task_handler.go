package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tidylist/internal/response"
	"tidylist/internal/services"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service  *services.TaskService
	validate *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the task routes. The router is expected to carry
// the auth gate. The update route takes the task id in the body.
func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskRoutes := router.Group("/task")
	taskRoutes.Post("/", h.HandleCreate)
	taskRoutes.Get("/", h.HandleFindAll)
	taskRoutes.Get("/by-category/:categoryId", h.HandleFindByCategory)
	taskRoutes.Get("/:id", h.HandleFindOne)
	taskRoutes.Patch("/", h.HandleUpdate)
	taskRoutes.Delete("/:id", h.HandleRemove)
}

// CreateTaskRequest is the task creation body.
type CreateTaskRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	DueDate     *time.Time `json:"dueDate"`
	CategoryID  string     `json:"categoryId" validate:"required"`
}

// UpdateTaskRequest is a partial task patch; the id is mandatory.
type UpdateTaskRequest struct {
	ID          string     `json:"id" validate:"required"`
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
	CategoryID  *string    `json:"categoryId"`
}

// HandleCreate creates a task for the authenticated user.
func (h *TaskHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	task, err := h.service.Create(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		UserID:      userIDFromCtx(c),
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, "task created successfully", task)
}

// HandleFindAll lists the authenticated user's tasks.
func (h *TaskHandler) HandleFindAll(c *fiber.Ctx) error {
	tasks, err := h.service.FindAll(userIDFromCtx(c))
	if err != nil {
		return err
	}
	return response.OK(c, tasks)
}

// HandleFindOne returns one of the user's tasks by id.
func (h *TaskHandler) HandleFindOne(c *fiber.Ctx) error {
	task, err := h.service.FindOne(userIDFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, task)
}

// HandleFindByCategory lists the user's tasks under a category.
func (h *TaskHandler) HandleFindByCategory(c *fiber.Ctx) error {
	tasks, err := h.service.FindByCategory(userIDFromCtx(c), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return response.OK(c, tasks)
}

// HandleUpdate patches one of the user's tasks.
func (h *TaskHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	task, err := h.service.Update(services.UpdateTaskInput{
		ID:          req.ID,
		UserID:      userIDFromCtx(c),
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return response.OK(c, task)
}

// HandleRemove deletes one of the user's tasks.
func (h *TaskHandler) HandleRemove(c *fiber.Ctx) error {
	task, err := h.service.Remove(userIDFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, "task deleted successfully", task)
}
