package handler

import (
	"movie_vault/api/middleware"
	"movie_vault/configs"
	"movie_vault/internal/service"
	"movie_vault/model"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/response"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const oauthStateSessionKey = "oauthState"

type IAuthHandler interface {
	GithubLogin(c *fiber.Ctx) error
	GithubCallback(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	Me(c *fiber.Ctx) error
}

type AuthHandler struct {
	authService service.IAuthService
	store       *session.Store
}

func NewAuthHandler(authService service.IAuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

//------------------------------------------
//------------------------------------------

// GithubLogin godoc
//
//	@Summary		Github Login
//	@Description	redirects to github. redirect is only honored for allowed origins.
//	@Tags			Auth
//	@Param			redirect	query	string	false	"where to go after login"
//	@Success		302
//	@Failure		400,500	{object}	response.ResponseErrorModel
//	@Router			/auth/github [get]
func (h *AuthHandler) GithubLogin(c *fiber.Ctx) error {
	redirectTo := strings.TrimSpace(c.Query("redirect", ""))
	if redirectTo != "" && !isAllowedRedirect(redirectTo) {
		return response.ResponseError(c, response.InvalidRedirect, fiber.StatusBadRequest)
	}

	loginUrl, stateId, err := h.authService.GetLoginUrl(redirectTo)
	if err != nil {
		errorHandler.SaveError("failed to sign oauth state", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errorHandler.SaveError("failed to load session", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	sess.Set(oauthStateSessionKey, stateId)
	if err = sess.Save(); err != nil {
		errorHandler.SaveError("failed to save oauth state", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return c.Redirect(loginUrl, fiber.StatusFound)
}

// GithubCallback godoc
//
//	@Summary		Github Callback
//	@Description	exchanges the code, creates or refreshes the user and starts a session.
//	@Tags			Auth
//	@Param			code		query		string	true	"oauth code"
//	@Param			state		query		string	true	"signed state"
//	@Success		200			{object}	model.LoginRes
//	@Failure		400,401,500	{object}	response.ResponseErrorModel
//	@Router			/auth/github/callback [get]
func (h *AuthHandler) GithubCallback(c *fiber.Ctx) error {
	code := c.Query("code", "")
	if code == "" {
		return response.ResponseError(c, response.MissingCode, fiber.StatusBadRequest)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		errorHandler.SaveError("failed to load session", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	// a state is accepted once
	stateId, _ := sess.Get(oauthStateSessionKey).(string)
	sess.Delete(oauthStateSessionKey)

	user, redirectTo, err := h.authService.HandleGithubCallback(c.UserContext(), code, c.Query("state", ""), stateId)
	if err != nil {
		if stateId != "" {
			_ = sess.Save()
		}
		return handleServiceError(c, err)
	}

	if err := startSession(sess, user); err != nil {
		errorHandler.SaveError("failed to start session", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	if redirectTo != "" {
		return c.Redirect(redirectTo, fiber.StatusFound)
	}
	return response.ResponseOKWithData(c, model.LoginRes{
		Message: response.LoginSuccess,
		User:    user,
	})
}

// Logout godoc
//
//	@Summary		Logout
//	@Tags			Auth
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		err = sess.Destroy()
	}
	if err != nil {
		errorHandler.SaveError("failed to destroy session", err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, response.LoggedOut)
}

// Me godoc
//
//	@Summary		Current User
//	@Tags			Auth
//	@Success		200	{object}	model.User
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		SessionCookie
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, middleware.GetIdentity(c))
}

//------------------------------------------
//------------------------------------------

// startSession replaces the pre-login session id before storing the user.
func startSession(sess *session.Session, user *model.User) error {
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middleware.SessionUserIdKey, user.Id.Hex())
	return sess.Save()
}

func isAllowedRedirect(redirectTo string) bool {
	u, err := url.Parse(redirectTo)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	origin := u.Scheme + "://" + u.Host
	return middleware.LocalhostRegex.MatchString(origin) || configs.IsOriginAllowed(origin)
}
