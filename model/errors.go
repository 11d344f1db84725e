package model

import (
	"errors"
	"net/http"
)

var ErrMovieNotFound = errors.New("movie not found")
var ErrReviewNotFound = errors.New("review not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserMovieNotFound = errors.New("movie not found in user collection")
var ErrMovieAlreadyExist = errors.New("movie with this title and year already exist")
var ErrReviewAlreadyExist = errors.New("user already reviewed this movie")
var ErrUserMovieAlreadyExist = errors.New("movie already exist in user collection")
var ErrEmailAlreadyExist = errors.New("email already used by another user")
var ErrUserAlreadyExist = errors.New("user already exist")
var ErrMovieHasReviews = errors.New("cannot delete a movie that has reviews")
var ErrUnauthorized = errors.New("unauthorized")
var ErrInvalidState = errors.New("invalid or expired oauth state")

func GetErrorCode(err error) int {
	if err == nil {
		return 0
	}
	code400 := []error{
		ErrMovieHasReviews,
	}
	code401 := []error{
		ErrUnauthorized,
		ErrInvalidState,
	}
	code404 := []error{
		ErrMovieNotFound,
		ErrReviewNotFound,
		ErrUserNotFound,
		ErrUserMovieNotFound,
	}
	code409 := []error{
		ErrMovieAlreadyExist,
		ErrReviewAlreadyExist,
		ErrUserMovieAlreadyExist,
		ErrEmailAlreadyExist,
		ErrUserAlreadyExist,
	}

	if isAny(err, code400) {
		return http.StatusBadRequest
	}
	if isAny(err, code401) {
		return http.StatusUnauthorized
	}
	if isAny(err, code404) {
		return http.StatusNotFound
	}
	if isAny(err, code409) {
		return http.StatusConflict
	}

	return 0
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
