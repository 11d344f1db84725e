package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrMovieNotFound, http.StatusNotFound},
		{ErrUserMovieNotFound, http.StatusNotFound},
		{ErrReviewAlreadyExist, http.StatusConflict},
		{ErrEmailAlreadyExist, http.StatusConflict},
		{ErrMovieHasReviews, http.StatusBadRequest},
		{ErrInvalidState, http.StatusUnauthorized},
		{fmt.Errorf("insert review: %w", ErrReviewAlreadyExist), http.StatusConflict},
		{errors.New("connection reset"), 0},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, GetErrorCode(tt.err), "%v", tt.err)
	}
}
