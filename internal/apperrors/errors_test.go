package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tidylist/internal/apperrors"
)

func TestKindStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperrors.KindValidation.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, apperrors.KindUnauthenticated.StatusCode())
	assert.Equal(t, http.StatusNotFound, apperrors.KindNotFound.StatusCode())
	assert.Equal(t, http.StatusConflict, apperrors.KindConflict.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, apperrors.KindInternal.StatusCode())

	// Unknown kinds fall back to 500.
	assert.Equal(t, http.StatusInternalServerError, apperrors.Kind(99).StatusCode())
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := apperrors.Internal("something broke", cause)

	assert.Equal(t, "something broke: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	var appErr *apperrors.Error
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, apperrors.KindInternal, appErr.Kind)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, apperrors.KindNotFound, apperrors.NotFound("missing").Kind)
	assert.Equal(t, apperrors.KindConflict, apperrors.Conflict("taken").Kind)
	assert.Equal(t, apperrors.KindUnauthenticated, apperrors.Unauthenticated("nope").Kind)

	v := apperrors.Validation("validation failed", map[string]string{"Name": "required"})
	assert.Equal(t, apperrors.KindValidation, v.Kind)
	assert.Equal(t, map[string]string{"Name": "required"}, v.Details)
	assert.Equal(t, "validation failed", v.Error())
}
