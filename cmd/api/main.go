package main

import (
	"context"
	"log"
	"movie_vault/api"
	"movie_vault/configs"
	"movie_vault/db/mongodb"
	"movie_vault/db/rabbitmq"
	"movie_vault/db/redis"
	"movie_vault/internal/handler"
	"movie_vault/internal/repository"
	"movie_vault/internal/service"
	"movie_vault/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title						Movie Vault
// @version					1.0
// @description				Movie catalog with reviews and personal watch lists.
// @BasePath					/
// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						movie_vault_session
// @description				Session cookie set by /auth/github/callback.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	if err := logger.Init(configs.GetConfigs().IsProduction()); err != nil {
		log.Fatalf("logger.Init: %s", err)
	}
	defer logger.Sync()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		Environment:      configs.GetConfigs().Environment,
		TracesSampleRate: 0.2,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.L().Fatal("sentry.Init", zap.Error(err))
	}
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoDB, err := mongodb.NewDatabase(ctx)
	if err != nil {
		logger.L().Fatal("could not initialize mongodb database connection", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Close(); err != nil {
			logger.L().Warn("mongodb disconnect", zap.Error(err))
		}
	}()
	if err = repository.EnsureIndexes(ctx, mongoDB.GetDB()); err != nil {
		logger.L().Fatal("could not create mongodb indexes", zap.Error(err))
	}
	go configs.LoadDbConfigs(ctx, mongoDB.GetDB())

	var sessionStorage fiber.Storage
	if url := configs.GetConfigs().RedisUrl; url != "" {
		redisClient := redis.NewClient(url, configs.GetConfigs().RedisPassword)
		if err = redis.Ping(ctx, redisClient); err != nil {
			logger.L().Fatal("could not connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionStorage = redis.NewSessionStorage(redisClient)
	} else {
		logger.L().Warn("REDIS_URL is empty, sessions are kept in memory")
	}
	store := api.NewSessionStore(sessionStorage)

	var eventPublisher service.EventPublisher
	if url := configs.GetConfigs().RabbitmqUrl; url != "" {
		publisher, err := rabbitmq.NewPublisher(url, rabbitmq.EventsQueue)
		if err != nil {
			logger.L().Fatal("could not connect to rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		eventPublisher = publisher
	}
	eventSvc := service.NewEventService(eventPublisher)

	movieRep := repository.NewMovieRepository(mongoDB.GetDB())
	reviewRep := repository.NewReviewRepository(mongoDB.GetDB())
	userMovieRep := repository.NewUserMovieRepository(mongoDB.GetDB())
	userRep := repository.NewUserRepository(mongoDB.GetDB())

	movieSvc := service.NewMovieService(movieRep, reviewRep, userMovieRep, eventSvc)
	reviewSvc := service.NewReviewService(reviewRep, movieRep, eventSvc)
	collectionSvc := service.NewCollectionService(userMovieRep, movieRep, eventSvc)
	userSvc := service.NewUserService(userRep, reviewRep, userMovieRep, eventSvc)
	authSvc := service.NewAuthService(service.AuthConfig{
		ClientId:     configs.GetConfigs().GithubClientId,
		ClientSecret: configs.GetConfigs().GithubClientSecret,
		RedirectUrl:  configs.GetConfigs().ServerAddress + "/auth/github/callback",
		StateSecret:  configs.GetConfigs().StateTokenSecret,
	}, userSvc)

	api.InitRouter(api.Handlers{
		Movie:      handler.NewMovieHandler(movieSvc),
		Review:     handler.NewReviewHandler(reviewSvc),
		Collection: handler.NewCollectionHandler(collectionSvc),
		User:       handler.NewUserHandler(userSvc, store),
		Auth:       handler.NewAuthHandler(authSvc, store),
	}, store, userSvc)

	go func() {
		<-ctx.Done()
		if err := api.Shutdown(10 * time.Second); err != nil {
			logger.L().Error("server shutdown", zap.Error(err))
		}
	}()

	addr := "0.0.0.0:" + configs.GetConfigs().Port
	logger.L().Info("server listening", zap.String("addr", addr))
	if err = api.Start(addr); err != nil {
		logger.L().Error("server stopped", zap.Error(err))
	}
}
