package handler

import (
	"movie_vault/api/middleware"
	"movie_vault/internal/service"
	"movie_vault/model"
	"movie_vault/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IReviewHandler interface {
	GetUserMovieReview(c *fiber.Ctx) error
	CreateUserMovieReview(c *fiber.Ctx) error
	UpdateUserMovieReview(c *fiber.Ctx) error
	DeleteUserMovieReview(c *fiber.Ctx) error
	GetUserReviews(c *fiber.Ctx) error
	UpdateReview(c *fiber.Ctx) error
	DeleteReview(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// GetUserMovieReview godoc
//
//	@Summary		Get My Review
//	@Tags			Reviews
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	model.Review
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId}/review [get]
func (h *ReviewHandler) GetUserMovieReview(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	review, err := h.reviewService.GetUserMovieReview(c.UserContext(), middleware.GetIdentity(c).Id, movieId)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, review)
}

// CreateUserMovieReview godoc
//
//	@Summary		Create Review
//	@Description	one review per user and movie, rating is an integer from 1 to 5.
//	@Tags			Reviews
//	@Param			movieId			path		string			true	"movieId"
//	@Param			body			body		model.ReviewReq	true	"review"
//	@Success		201				{object}	model.Review
//	@Failure		400,401,404,409	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId}/review [post]
func (h *ReviewHandler) CreateUserMovieReview(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var req model.ReviewReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.reviewService.CreateReview(c.UserContext(), middleware.GetIdentity(c).Id, movieId, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseCreated(c, review)
}

// UpdateUserMovieReview godoc
//
//	@Summary		Update My Review
//	@Tags			Reviews
//	@Param			movieId		path		string			true	"movieId"
//	@Param			body		body		model.ReviewReq	true	"review"
//	@Success		200			{object}	model.Review
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId}/review [put]
func (h *ReviewHandler) UpdateUserMovieReview(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var req model.ReviewReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.reviewService.UpdateUserMovieReview(c.UserContext(), middleware.GetIdentity(c).Id, movieId, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, review)
}

// DeleteUserMovieReview godoc
//
//	@Summary		Delete My Review
//	@Tags			Reviews
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId}/review [delete]
func (h *ReviewHandler) DeleteUserMovieReview(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	if err := h.reviewService.DeleteUserMovieReview(c.UserContext(), middleware.GetIdentity(c).Id, movieId); err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOK(c, response.ReviewDeleted)
}

// GetUserReviews godoc
//
//	@Summary		My Reviews
//	@Tags			Reviews
//	@Param			movieId	query		string	false	"only the review of this movie"
//	@Success		200		{object}	model.ReviewsRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/reviews [get]
func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	var movieId *primitive.ObjectID
	if raw := c.Query("movieId", ""); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
		}
		movieId = &id
	}

	res, err := h.reviewService.GetUserReviews(c.UserContext(), middleware.GetIdentity(c).Id, movieId)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// UpdateReview godoc
//
//	@Summary		Update Review By Id
//	@Description	only reviews of the caller can be changed, others answer 404.
//	@Tags			Reviews
//	@Param			reviewId	path		string			true	"reviewId"
//	@Param			body		body		model.ReviewReq	true	"review"
//	@Success		200			{object}	model.Review
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/reviews/{reviewId} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	reviewId, ok := parseObjectIdParam(c, "reviewId")
	if !ok {
		return response.ResponseError(c, response.InvalidReviewId, fiber.StatusBadRequest)
	}
	var req model.ReviewReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	review, err := h.reviewService.UpdateReviewById(c.UserContext(), middleware.GetIdentity(c).Id, reviewId, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, review)
}

// DeleteReview godoc
//
//	@Summary		Delete Review By Id
//	@Description	only reviews of the caller can be deleted, others answer 404.
//	@Tags			Reviews
//	@Param			reviewId	path		string	true	"reviewId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/reviews/{reviewId} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	reviewId, ok := parseObjectIdParam(c, "reviewId")
	if !ok {
		return response.ResponseError(c, response.InvalidReviewId, fiber.StatusBadRequest)
	}

	if err := h.reviewService.DeleteReviewById(c.UserContext(), middleware.GetIdentity(c).Id, reviewId); err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOK(c, response.ReviewDeleted)
}
