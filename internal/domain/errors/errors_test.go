package errors

import (
	"net/http"
	"testing"

	"market/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrappedKeepsHTTPCode(t *testing.T) {
	err := errors.Wrap(ErrCircularReference, "failed to update category")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "CATEGORY_CIRCULAR_REFERENCE", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrCircularReference))
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrDuplicateReview.WithDetails("product 12")

	assert.True(t, errors.Is(detailed, ErrDuplicateReview))
	assert.False(t, errors.Is(detailed, ErrReviewNotFound))
	assert.Equal(t, "product 12", detailed.Details())
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *BaseError
		want int
	}{
		{name: "category not found", err: ErrCategoryNotFound, want: http.StatusNotFound},
		{name: "parent not found", err: ErrParentCategoryNotFound, want: http.StatusBadRequest},
		{name: "self parent", err: ErrSelfParent, want: http.StatusBadRequest},
		{name: "circular reference", err: ErrCircularReference, want: http.StatusBadRequest},
		{name: "duplicate review", err: ErrDuplicateReview, want: http.StatusBadRequest},
		{name: "product reassignment", err: ErrProductReassignmentForbidden, want: http.StatusBadRequest},
		{name: "review ownership", err: ErrReviewUpdateForbidden, want: http.StatusForbidden},
		{name: "invalid credentials", err: ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "invalid refresh token", err: ErrRefreshTokenInvalid, want: http.StatusUnauthorized},
		{name: "duplicate email", err: ErrUserAlreadyExists, want: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create review")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create review", err.Details())
}
