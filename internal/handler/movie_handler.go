package handler

import (
	"movie_vault/api/middleware"
	"movie_vault/internal/service"
	"movie_vault/model"
	"movie_vault/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	GetMovie(c *fiber.Ctx) error
	CreateMovie(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
	GetMovieReviews(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		List Movies
//	@Description	list the catalog, filters are combined with AND.
//	@Tags			Movies
//	@Param			genre		query		string	false	"genre membership"
//	@Param			year		query		int		false	"exact year"
//	@Param			director	query		string	false	"exact director"
//	@Param			title		query		string	false	"case-insensitive title substring"
//	@Success		200			{object}	model.MoviesRes
//	@Failure		400			{object}	response.ResponseErrorModel
//	@Router			/movies [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	year, ok := parseYearQuery(c)
	if !ok {
		return response.ResponseError(c, response.InvalidYear, fiber.StatusBadRequest)
	}

	res, err := h.movieService.GetMovies(c.UserContext(), model.MovieFilter{
		Genre:    strings.TrimSpace(c.Query("genre", "")),
		Year:     year,
		Director: strings.TrimSpace(c.Query("director", "")),
		Title:    strings.TrimSpace(c.Query("title", "")),
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovie godoc
//
//	@Summary		Get Movie
//	@Tags			Movies
//	@Param			movieId	path		string	true	"movieId"
//	@Success		200		{object}	model.Movie
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/{movieId} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	movie, err := h.movieService.GetMovie(c.UserContext(), movieId)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}

// CreateMovie godoc
//
//	@Summary		Create Movie
//	@Description	add a movie to the catalog, title and year are unique together.
//	@Tags			Movies
//	@Param			body			body		model.CreateMovieReq	true	"movie"
//	@Success		201				{object}	model.Movie
//	@Failure		400,401,409		{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req model.CreateMovieReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	movie, err := h.movieService.CreateMovie(c.UserContext(), middleware.GetIdentity(c).Id, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseCreated(c, movie)
}

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	partial update, only the provided fields change.
//	@Tags			Movies
//	@Param			movieId			path		string					true	"movieId"
//	@Param			body			body		model.UpdateMovieReq	true	"fields to change"
//	@Success		200				{object}	model.Movie
//	@Failure		400,401,404,409	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/movies/{movieId} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var req model.UpdateMovieReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	movie, err := h.movieService.UpdateMovie(c.UserContext(), middleware.GetIdentity(c).Id, movieId, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, movie)
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	fails while the movie has reviews. Collection entries of the movie are removed too.
//	@Tags			Movies
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/movies/{movieId} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	if err := h.movieService.DeleteMovie(c.UserContext(), middleware.GetIdentity(c).Id, movieId); err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOK(c, response.MovieDeleted)
}

// GetMovieReviews godoc
//
//	@Summary		Movie Reviews
//	@Description	reviews of a movie, newest first.
//	@Tags			Movies
//	@Param			movieId	path		string	true	"movieId"
//	@Success		200		{object}	model.ReviewsRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/{movieId}/reviews [get]
func (h *MovieHandler) GetMovieReviews(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	res, err := h.movieService.GetMovieReviews(c.UserContext(), movieId)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}
