// Package response implements the uniform response envelope. Every success
// is {statusCode, message, data}; every error is {statusCode, message, errors}.
package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"tidylist/internal/apperrors"
)

// DefaultMessage is used when a handler has nothing more specific to say.
const DefaultMessage = "operation successful"

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// ErrorEnvelope wraps every error response body. Errors is null unless the
// failure carries structured detail (e.g. field-level validation messages).
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Errors     any    `json:"errors"`
}

// Success writes the success envelope with the given HTTP status.
func Success(c *fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(SuccessEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// OK writes a 200 success envelope with the default message.
func OK(c *fiber.Ctx, data any) error {
	return Success(c, http.StatusOK, DefaultMessage, data)
}

// ErrorHandler is installed as the Fiber app's error handler. Domain errors
// map through the apperrors kind table; anything else is downgraded to a 500
// with the error text as a best-effort diagnostic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	statusCode := http.StatusInternalServerError
	message := "an unexpected error occurred"
	var details any

	var appErr *apperrors.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		statusCode = appErr.Kind.StatusCode()
		message = appErr.Message
		details = appErr.Details
		if appErr.Kind == apperrors.KindInternal {
			log.Printf("internal error: %v", appErr)
		}
	case errors.As(err, &fiberErr):
		statusCode = fiberErr.Code
		message = fiberErr.Message
	case err != nil:
		message = err.Error()
		log.Printf("unhandled error: %v", err)
	}

	return c.Status(statusCode).JSON(ErrorEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Errors:     details,
	})
}
