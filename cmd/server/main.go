package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/HPainhas/DevConnector/adapters/event"
	"github.com/HPainhas/DevConnector/adapters/github"
	httpAdapter "github.com/HPainhas/DevConnector/adapters/http"
	"github.com/HPainhas/DevConnector/adapters/persistence"
	authUC "github.com/HPainhas/DevConnector/internal/application/usecase/auth"
	githubUC "github.com/HPainhas/DevConnector/internal/application/usecase/github"
	profileUC "github.com/HPainhas/DevConnector/internal/application/usecase/profile"
	"github.com/HPainhas/DevConnector/internal/config"
	"github.com/HPainhas/DevConnector/pkg/auth"
	"github.com/HPainhas/DevConnector/pkg/logger"
	"github.com/HPainhas/DevConnector/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DevConnector API server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnector-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		// The GitHub cache is optional; run without it.
		appLogger.Warn("Redis unavailable, github cache disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	githubSvc := github.NewGitHubAdapter(cfg, appLogger)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, postRepo, userRepo, kafkaClient, appLogger)
	listReposUseCase := githubUC.NewListReposUseCase(githubSvc, redisClient, cfg.GitHub.CacheTTL, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, currentUserUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	githubHandler := httpAdapter.NewGithubHandler(listReposUseCase)

	router := httpAdapter.NewRouter(
		authHandler,
		profileHandler,
		githubHandler,
		httpAdapter.AuthMiddleware(jwtSvc),
		httpAdapter.ErrorMiddleware(appLogger),
	)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
