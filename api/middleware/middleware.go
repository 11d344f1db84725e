package middleware

import (
	"context"
	"errors"
	"movie_vault/internal/service"
	"movie_vault/model"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/response"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	identityLocalsKey = "identity"
	SessionUserIdKey  = "userId"
)

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)

// AuthMiddleware resolves the session to a stored user. Requests without a valid
// identity are rejected, there is no anonymous fallback.
func AuthMiddleware(store *session.Store, userService service.IUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			errorHandler.SaveError("failed to load session", err)
			return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
		}

		raw, _ := sess.Get(SessionUserIdKey).(string)
		if raw == "" {
			return response.ResponseError(c, response.Unauthorized, fiber.StatusUnauthorized)
		}

		userId, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			_ = sess.Destroy()
			return response.ResponseError(c, response.Unauthorized, fiber.StatusUnauthorized)
		}

		user, err := userService.GetUser(c.UserContext(), userId)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				_ = sess.Destroy()
				return response.ResponseError(c, response.Unauthorized, fiber.StatusUnauthorized)
			}
			errorHandler.SaveError("failed to load session user", err)
			return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
		}

		SetIdentity(c, user)
		return c.Next()
	}
}

func SetIdentity(c *fiber.Ctx, user *model.User) {
	c.Locals(identityLocalsKey, user)
}

// GetIdentity returns the user set by AuthMiddleware, nil on routes without it.
func GetIdentity(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(identityLocalsKey).(*model.User)
	return user
}

// TimeoutMiddleware bounds the user context handed to services.
func TimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		c.SetUserContext(ctx)
		err := c.Next()
		if err == nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return response.ResponseError(c, response.ServerError, fiber.StatusGatewayTimeout)
		}
		return err
	}
}
