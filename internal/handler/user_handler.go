package handler

import (
	"movie_vault/api/middleware"
	"movie_vault/internal/service"
	"movie_vault/model"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/response"
	"movie_vault/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type IUserHandler interface {
	UpdateProfile(c *fiber.Ctx) error
	DeleteAccount(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
	store       *session.Store
}

func NewUserHandler(userService service.IUserService, store *session.Store) *UserHandler {
	return &UserHandler{
		userService: userService,
		store:       store,
	}
}

//------------------------------------------
//------------------------------------------

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	change display name or email, the email must be free.
//	@Tags			User
//	@Param			body			body		model.UpdateProfileReq	true	"profile"
//	@Success		200				{object}	model.User
//	@Failure		400,401,404,409	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if req.Name == nil && req.Email == nil {
		return response.ResponseError(c, response.EmptyUpdate, fiber.StatusBadRequest)
	}
	if req.Email != nil && *req.Email != "" {
		if err := util.ValidateEmail(*req.Email); err != nil {
			return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
		}
	}

	user, err := h.userService.UpdateProfile(c.UserContext(), middleware.GetIdentity(c).Id, &req)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.ResponseOKWithData(c, user)
}

// DeleteAccount godoc
//
//	@Summary		Delete Account
//	@Description	removes the user with every review and collection entry, then ends the session.
//	@Tags			User
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/users/me [delete]
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(c.UserContext(), middleware.GetIdentity(c).Id); err != nil {
		return handleServiceError(c, err)
	}

	sess, err := h.store.Get(c)
	if err == nil {
		err = sess.Destroy()
	}
	if err != nil {
		errorHandler.SaveError("failed to destroy session of deleted user", err)
	}
	return response.ResponseOK(c, response.UserDeleted)
}
