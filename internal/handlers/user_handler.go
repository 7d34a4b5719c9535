package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tidylist/internal/response"
	"tidylist/internal/services"
)

// UserHandler handles HTTP requests for per-user settings.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user-settings routes. The router is expected
// to carry the auth gate.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/user-settings", h.HandleGetSettings)
	userRoutes.Patch("/user-settings", h.HandleUpsertSettings)
}

// UpdateUserSettingsRequest is the settings write body. A pointer keeps
// "darkMode": false distinguishable from an absent field.
type UpdateUserSettingsRequest struct {
	DarkMode *bool `json:"darkMode" validate:"required"`
}

// HandleGetSettings returns the authenticated user's settings.
func (h *UserHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings(userIDFromCtx(c))
	if err != nil {
		return err
	}
	return response.OK(c, settings)
}

// HandleUpsertSettings writes the user's settings, creating the row on the
// first write.
func (h *UserHandler) HandleUpsertSettings(c *fiber.Ctx) error {
	var req UpdateUserSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	settings, err := h.service.UpsertSettings(services.UpsertSettingsInput{
		UserID:   userIDFromCtx(c),
		DarkMode: *req.DarkMode,
	})
	if err != nil {
		return err
	}
	return response.OK(c, settings)
}
