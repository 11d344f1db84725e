package util

import (
	"movie_vault/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func TestValidateStruct_Review(t *testing.T) {
	assert.Nil(t, ValidateStruct(&model.ReviewReq{Rating: intPtr(5), Message: "Brilliant"}))

	errs := ValidateStruct(&model.ReviewReq{Rating: intPtr(0), Message: "x"})
	assert.Contains(t, errs, "rating")

	errs = ValidateStruct(&model.ReviewReq{Rating: intPtr(6), Message: "x"})
	assert.Equal(t, "must be at most 5", errs["rating"])

	errs = ValidateStruct(&model.ReviewReq{Message: "x"})
	assert.Equal(t, "is required", errs["rating"])

	errs = ValidateStruct(&model.ReviewReq{Rating: intPtr(3)})
	assert.Equal(t, "is required", errs["message"])

	errs = ValidateStruct(&model.ReviewReq{Rating: intPtr(3), Message: strings.Repeat("a", 5001)})
	assert.Contains(t, errs, "message")
}

func TestValidateStruct_Movie(t *testing.T) {
	assert.Nil(t, ValidateStruct(&model.CreateMovieReq{Title: "Arrival", Year: intPtr(2016)}))

	errs := ValidateStruct(&model.CreateMovieReq{Title: "Arrival", Year: intPtr(1500)})
	assert.Equal(t, "must be at least 1888", errs["year"])

	errs = ValidateStruct(&model.CreateMovieReq{Year: intPtr(2016), PosterUrl: "not a url"})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "posterUrl")

	errs = ValidateStruct(&model.CreateMovieReq{Title: "Arrival", Year: intPtr(2016), Length: intPtr(-1)})
	assert.Contains(t, errs, "length")
}

func TestValidateStruct_UpdateMovie(t *testing.T) {
	assert.Nil(t, ValidateStruct(&model.UpdateMovieReq{}))

	errs := ValidateStruct(&model.UpdateMovieReq{Title: strPtr("")})
	assert.Contains(t, errs, "title")

	errs = ValidateStruct(&model.UpdateMovieReq{Year: intPtr(0)})
	assert.Contains(t, errs, "year")
}

func TestValidateStruct_UserMovie(t *testing.T) {
	assert.Nil(t, ValidateStruct(&model.AddUserMovieReq{MovieId: "x"}))

	errs := ValidateStruct(&model.AddUserMovieReq{MovieId: "x", Status: "finished"})
	assert.Contains(t, errs, "status")

	errs = ValidateStruct(&model.UpdateUserMovieReq{})
	assert.Equal(t, "is required", errs["status"])
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("louise@banks.dev"))
	assert.Error(t, ValidateEmail("not-an-email"))
}
