package handler

import (
	"movie_vault/api/middleware"
	"movie_vault/internal/service"
	"movie_vault/model"
	"movie_vault/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICollectionHandler interface {
	GetCollection(c *fiber.Ctx) error
	AddMovie(c *fiber.Ctx) error
	GetCollectionMovie(c *fiber.Ctx) error
	UpdateCollectionMovie(c *fiber.Ctx) error
	RemoveCollectionMovie(c *fiber.Ctx) error
}

type CollectionHandler struct {
	collectionService service.ICollectionService
}

func NewCollectionHandler(collectionService service.ICollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

//------------------------------------------
//------------------------------------------

// GetCollection godoc
//
//	@Summary		My Movies
//	@Description	the caller's collection joined with the catalog, newest first.
//	@Tags			Collection
//	@Param			status	query		string	false	"planned_to_watch | watching | watched | dropped"
//	@Param			genre	query		string	false	"genre membership"
//	@Param			year	query		int		false	"exact year"
//	@Param			title	query		string	false	"case-insensitive title substring"
//	@Success		200		{object}	model.CollectionRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies [get]
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	status := model.WatchStatus(strings.TrimSpace(c.Query("status", "")))
	if status != "" && !status.IsValid() {
		return response.ResponseError(c, response.InvalidStatus, fiber.StatusBadRequest)
	}
	year, ok := parseYearQuery(c)
	if !ok {
		return response.ResponseError(c, response.InvalidYear, fiber.StatusBadRequest)
	}

	res, err := h.collectionService.GetCollection(c.UserContext(), middleware.GetIdentity(c).Id, model.CollectionFilter{
		Status: status,
		Genre:  strings.TrimSpace(c.Query("genre", "")),
		Year:   year,
		Title:  strings.TrimSpace(c.Query("title", "")),
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// AddMovie godoc
//
//	@Summary		Add Movie To Collection
//	@Description	status defaults to planned_to_watch.
//	@Tags			Collection
//	@Param			body			body		model.AddUserMovieReq	true	"entry"
//	@Success		201				{object}	model.CollectionMovie
//	@Failure		400,401,404,409	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies [post]
func (h *CollectionHandler) AddMovie(c *fiber.Ctx) error {
	var req model.AddUserMovieReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	movieId, err := primitive.ObjectIDFromHex(req.MovieId)
	if err != nil {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	entry, err := h.collectionService.AddMovie(c.UserContext(), middleware.GetIdentity(c).Id, movieId, req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseCreated(c, entry)
}

// GetCollectionMovie godoc
//
//	@Summary		Get Collection Movie
//	@Tags			Collection
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	model.CollectionMovie
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId} [get]
func (h *CollectionHandler) GetCollectionMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	entry, err := h.collectionService.GetCollectionMovie(c.UserContext(), middleware.GetIdentity(c).Id, movieId)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, entry)
}

// UpdateCollectionMovie godoc
//
//	@Summary		Update Watch Status
//	@Tags			Collection
//	@Param			movieId		path		string						true	"movieId"
//	@Param			body		body		model.UpdateUserMovieReq	true	"status"
//	@Success		200			{object}	model.CollectionMovie
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId} [put]
func (h *CollectionHandler) UpdateCollectionMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var req model.UpdateUserMovieReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	entry, err := h.collectionService.UpdateStatus(c.UserContext(), middleware.GetIdentity(c).Id, movieId, req.Status)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, entry)
}

// RemoveCollectionMovie godoc
//
//	@Summary		Remove From Collection
//	@Tags			Collection
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me/movies/{movieId} [delete]
func (h *CollectionHandler) RemoveCollectionMovie(c *fiber.Ctx) error {
	movieId, ok := parseObjectIdParam(c, "movieId")
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	if err := h.collectionService.RemoveMovie(c.UserContext(), middleware.GetIdentity(c).Id, movieId); err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOK(c, response.UserMovieDeleted)
}
