package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tidylist/internal/apperrors"
	"tidylist/internal/middleware"
)

// validateStruct runs validator tags over a request DTO and converts failures
// into a validation error carrying field-level messages.
func validateStruct(validate *validator.Validate, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return apperrors.Validation("validation failed", errorMessages)
	}
	return apperrors.Validation("validation failed", nil)
}

// errInvalidBody is returned when the request body cannot be parsed.
func errInvalidBody(err error) error {
	return apperrors.Validation("invalid request body", err.Error())
}

// userIDFromCtx reads the authenticated caller's id stored by the auth gate.
func userIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.UserIDKey).(string)
	return id
}
