package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tidylist/internal/middleware"
	"tidylist/internal/response"
	"tidylist/internal/services"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes. register and login are
// public; profile sits behind the auth gate.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/profile", authRequired, h.HandleProfile)
}

// RegisterRequest is the registration body. ConfirmPassword must equal
// Password or the request is rejected before reaching the service.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, "user registered successfully", user)
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleLogin authenticates the credentials and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidBody(err)
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return response.OK(c, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// HandleProfile returns the authenticated caller's token claims.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	return response.OK(c, c.Locals(middleware.ClaimsKey))
}
