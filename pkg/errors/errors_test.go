package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromErrorPassesThroughAppError(t *testing.T) {
	original := NewBadRequest("Job not found")
	require.Same(t, original, FromError(original))

	wrapped := fmt.Errorf("handler: %w", original)
	require.Same(t, original, FromError(wrapped))
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(errors.New("disk full"))
	require.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Code)
	require.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	require.EqualError(t, appErr.Internal, "disk full")
}

func TestWrapKeepsInternal(t *testing.T) {
	cause := errors.New("boom")
	appErr := Wrap(cause, "saving job")
	require.ErrorIs(t, appErr, cause)
	require.Contains(t, appErr.Error(), "saving job")
	require.Contains(t, appErr.Error(), "boom")
}

func TestConstructors(t *testing.T) {
	notFound := NewNotFound("Application not found")
	require.Equal(t, http.StatusNotFound, notFound.StatusCode)
	require.Equal(t, "NOT_FOUND", notFound.Code)

	bad := NewBadRequest("Invalid user type")
	require.Equal(t, http.StatusBadRequest, bad.StatusCode)
	require.Equal(t, "BAD_REQUEST", bad.Code)
}
