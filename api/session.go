package api

import (
	"movie_vault/configs"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const SessionCookieName = "movie_vault_session"

// NewSessionStore keeps sessions in storage, or in process memory when storage is nil.
func NewSessionStore(storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     time.Duration(configs.GetConfigs().SessionExpireHour) * time.Hour,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   configs.GetConfigs().IsProduction(),
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}
