package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tidylist/internal/response"
	"tidylist/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. The router is expected to
// carry the auth gate.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/category")
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Get("/", h.HandleFindAll)
	categoryRoutes.Get("/:id", h.HandleFindOne)
	categoryRoutes.Patch("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleRemove)
}

// CreateCategoryRequest is the category creation body.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest is a partial category patch.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// HandleCreate creates a category for the authenticated user.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	category, err := h.service.Create(services.CreateCategoryInput{
		Name:   req.Name,
		UserID: userIDFromCtx(c),
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, "category created successfully", category)
}

// HandleFindAll lists the authenticated user's categories.
func (h *CategoryHandler) HandleFindAll(c *fiber.Ctx) error {
	categories, err := h.service.FindAll(userIDFromCtx(c))
	if err != nil {
		return err
	}
	return response.OK(c, categories)
}

// HandleFindOne returns one of the user's categories by id.
func (h *CategoryHandler) HandleFindOne(c *fiber.Ctx) error {
	category, err := h.service.FindOne(userIDFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, category)
}

// HandleUpdate patches one of the user's categories.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	category, err := h.service.Update(services.UpdateCategoryInput{
		ID:     c.Params("id"),
		UserID: userIDFromCtx(c),
		Name:   req.Name,
	})
	if err != nil {
		return err
	}
	return response.OK(c, category)
}

// HandleRemove deletes one of the user's categories along with its tasks.
func (h *CategoryHandler) HandleRemove(c *fiber.Ctx) error {
	category, err := h.service.Remove(userIDFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, "category deleted successfully", category)
}
