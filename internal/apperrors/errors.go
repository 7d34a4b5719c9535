// Package apperrors defines the tagged error type shared by all services.
// Handlers return these errors unchanged; the response package owns the
// translation from Kind to HTTP status.
package apperrors

import "net/http"

// Kind discriminates the domain error categories.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindInternal
)

// statusByKind is the fixed Kind to HTTP status lookup table.
var statusByKind = map[Kind]int{
	KindValidation:      http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindInternal:        http.StatusInternalServerError,
}

// StatusCode returns the HTTP status for the kind, 500 for unknown kinds.
func (k Kind) StatusCode() int {
	if code, ok := statusByKind[k]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error is a domain error with a user-facing message. Details carries
// structured information (field-level validation messages); Err is the
// wrapped cause and is never sent to the client.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a 400-kind error with field-level details.
func Validation(message string, details any) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// Unauthenticated builds a 401-kind error.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// NotFound builds a 404-kind error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409-kind error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal builds a 500-kind error wrapping the cause. The message is what
// the client sees; the cause stays server-side.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
