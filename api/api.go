package api

import (
	"errors"
	"movie_vault/api/middleware"
	"movie_vault/configs"
	_ "movie_vault/docs"
	"movie_vault/internal/handler"
	"movie_vault/internal/service"
	errorHandler "movie_vault/pkg/error"
	"movie_vault/pkg/response"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestTimeout = 10 * time.Second

type Handlers struct {
	Movie      handler.IMovieHandler
	Review     handler.IReviewHandler
	Collection handler.ICollectionHandler
	User       handler.IUserHandler
	Auth       handler.IAuthHandler
}

var router *fiber.App

func InitRouter(h Handlers, store *session.Store, userService service.IUserService) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= 500 {
			errorHandler.SaveError("unhandled error on "+c.Method()+" "+c.Path(), err)
			return response.ResponseError(c, response.ServerError, code)
		}
		return response.ResponseError(c, e.Message, code)
	}

	router = fiber.New(fiber.Config{
		BodyLimit:    1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) || configs.IsOriginAllowed(origin)
		},
		AllowCredentials: true,
	}))
	router.Use(requestid.New())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.TimeoutMiddleware(requestTimeout))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	auth := middleware.AuthMiddleware(store, userService)

	movieRoutes := router.Group("/movies")
	{
		movieRoutes.Get("/", h.Movie.GetMovies)
		movieRoutes.Post("/", auth, h.Movie.CreateMovie)
		movieRoutes.Get("/:movieId", h.Movie.GetMovie)
		movieRoutes.Put("/:movieId", auth, h.Movie.UpdateMovie)
		movieRoutes.Delete("/:movieId", auth, h.Movie.DeleteMovie)
		movieRoutes.Get("/:movieId/reviews", h.Movie.GetMovieReviews)
	}

	userRoutes := router.Group("/users/me", auth)
	{
		userRoutes.Put("/", h.User.UpdateProfile)
		userRoutes.Delete("/", h.User.DeleteAccount)

		userRoutes.Get("/movies", h.Collection.GetCollection)
		userRoutes.Post("/movies", h.Collection.AddMovie)
		userRoutes.Get("/movies/:movieId", h.Collection.GetCollectionMovie)
		userRoutes.Put("/movies/:movieId", h.Collection.UpdateCollectionMovie)
		userRoutes.Delete("/movies/:movieId", h.Collection.RemoveCollectionMovie)

		userRoutes.Get("/movies/:movieId/review", h.Review.GetUserMovieReview)
		userRoutes.Post("/movies/:movieId/review", h.Review.CreateUserMovieReview)
		userRoutes.Put("/movies/:movieId/review", h.Review.UpdateUserMovieReview)
		userRoutes.Delete("/movies/:movieId/review", h.Review.DeleteUserMovieReview)

		userRoutes.Get("/reviews", h.Review.GetUserReviews)
	}

	reviewRoutes := router.Group("/reviews", auth)
	{
		reviewRoutes.Put("/:reviewId", h.Review.UpdateReview)
		reviewRoutes.Delete("/:reviewId", h.Review.DeleteReview)
	}

	authRoutes := router.Group("/auth")
	{
		authRoutes.Get("/github", h.Auth.GithubLogin)
		authRoutes.Get("/github/callback", h.Auth.GithubCallback)
		authRoutes.Post("/logout", auth, h.Auth.Logout)
		authRoutes.Get("/me", auth, h.Auth.Me)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	router.Get("/monitor", monitor.New())
	router.Get("/swagger/*", swagger.HandlerDefault)

	router.Use(func(c *fiber.Ctx) error {
		return response.ResponseError(c, response.RouteNotFound, fiber.StatusNotFound)
	})

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown(timeout time.Duration) error {
	if router == nil {
		return nil
	}
	return router.ShutdownWithTimeout(timeout)
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	return response.ResponseOK(c, response.HealthCheckMessage)
}
