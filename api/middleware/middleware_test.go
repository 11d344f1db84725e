package middleware

import (
	"context"
	"errors"
	"io"
	"movie_vault/internal/repository/repotest"
	"movie_vault/internal/service"
	"movie_vault/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T) (*fiber.App, *repotest.Store) {
	t.Helper()
	store := repotest.NewStore()
	users := service.NewUserService(store, store, store, service.NewEventService(nil))
	sessions := session.New()

	app := fiber.New()
	app.Get("/login/:userId", func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			return err
		}
		sess.Set(SessionUserIdKey, c.Params("userId"))
		return sess.Save()
	})
	app.Get("/private", AuthMiddleware(sessions, users), func(c *fiber.Ctx) error {
		return c.SendString(GetIdentity(c).Name)
	})
	return app, store
}

func sessionCookie(t *testing.T, app *fiber.App, userId string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login/"+userId, nil))
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c.Value
		}
	}
	t.Fatalf("no session cookie")
	return ""
}

func getPrivate(t *testing.T, app *fiber.App, cookie string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, "session_id="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	app, store := newAuthApp(t)
	user, err := store.CreateUser(context.Background(), &model.User{GithubId: "1", Name: "Louise Banks"})
	require.NoError(t, err)

	t.Run("no session", func(t *testing.T) {
		code, _ := getPrivate(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("valid session", func(t *testing.T) {
		code, body := getPrivate(t, app, sessionCookie(t, app, user.Id.Hex()))
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "Louise Banks", body)
	})

	t.Run("malformed user id", func(t *testing.T) {
		code, _ := getPrivate(t, app, sessionCookie(t, app, "nope"))
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("deleted user", func(t *testing.T) {
		cookie := sessionCookie(t, app, user.Id.Hex())
		_, err := store.DeleteUser(context.Background(), user.Id)
		require.NoError(t, err)
		code, _ := getPrivate(t, app, cookie)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("store failure", func(t *testing.T) {
		cookie := sessionCookie(t, app, user.Id.Hex())
		store.Err = errors.New("connection reset")
		defer func() { store.Err = nil }()
		code, _ := getPrivate(t, app, cookie)
		assert.Equal(t, fiber.StatusInternalServerError, code)
	})
}

func TestTimeoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(TimeoutMiddleware(20 * time.Millisecond))
	app.Get("/slow", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return nil
	})
	app.Get("/fast", func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		assert.True(t, ok)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/slow", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fast", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestLocalhostRegex(t *testing.T) {
	assert.True(t, LocalhostRegex.MatchString("http://localhost:3000"))
	assert.True(t, LocalhostRegex.MatchString("localhost"))
	assert.False(t, LocalhostRegex.MatchString("http://localhost.evil.com"))
	assert.False(t, LocalhostRegex.MatchString("https://example.com"))
}
