package handler

import (
	"errors"
	"movie_vault/model"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/response"
	"movie_vault/util"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errorMessages = []struct {
	err     error
	message string
}{
	{model.ErrMovieNotFound, response.MovieNotFound},
	{model.ErrReviewNotFound, response.ReviewNotFound},
	{model.ErrUserMovieNotFound, response.UserMovieNotFound},
	{model.ErrUserNotFound, response.UserNotFound},
	{model.ErrMovieAlreadyExist, response.MovieAlreadyExist},
	{model.ErrReviewAlreadyExist, response.ReviewAlreadyExist},
	{model.ErrUserMovieAlreadyExist, response.UserMovieAlreadyExist},
	{model.ErrEmailAlreadyExist, response.EmailAlreadyExist},
	{model.ErrMovieHasReviews, response.MovieHasReviews},
	{model.ErrInvalidState, response.InvalidState},
	{model.ErrUnauthorized, response.Unauthorized},
}

// handleServiceError answers known domain errors with their status. Anything else
// is a store failure: it is reported and hidden behind a generic 500.
func handleServiceError(c *fiber.Ctx, err error) error {
	if code := model.GetErrorCode(err); code != 0 {
		for _, m := range errorMessages {
			if errors.Is(err, m.err) {
				return response.ResponseError(c, m.message, code)
			}
		}
		return response.ResponseError(c, err.Error(), code)
	}

	errorHandler.SaveError(c.Method()+" "+c.Route().Path, err)
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}

func parseObjectIdParam(c *fiber.Ctx, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Params(name, ""))
	return id, err == nil
}

// parseBody decodes and validates the json body. On failure the 400 response has
// already been written and the returned error must be passed back to fiber.
func parseBody(c *fiber.Ctx, req interface{ Normalize() }) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	req.Normalize()
	if errs := util.ValidateStruct(req); errs != nil {
		return false, response.ResponseError(c, errs, fiber.StatusBadRequest)
	}
	return true, nil
}

func parseYearQuery(c *fiber.Ctx) (int, bool) {
	raw := strings.TrimSpace(c.Query("year", ""))
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < model.MinMovieYear {
		return 0, false
	}
	return year, true
}
