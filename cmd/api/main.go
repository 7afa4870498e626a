package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/matrimony-service/internal/api/http"
	"github.com/spec-kit/matrimony-service/internal/api/http/handlers"
	"github.com/spec-kit/matrimony-service/internal/auth"
	"github.com/spec-kit/matrimony-service/internal/config"
	"github.com/spec-kit/matrimony-service/internal/events"
	"github.com/spec-kit/matrimony-service/internal/observability"
	"github.com/spec-kit/matrimony-service/internal/payments"
	"github.com/spec-kit/matrimony-service/internal/persistence"
	"github.com/spec-kit/matrimony-service/internal/repository"
	"github.com/spec-kit/matrimony-service/internal/service"
	"github.com/spec-kit/matrimony-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	counterRepo := repository.NewCounterRepository(pool)
	biodataRepo := repository.NewBiodataRepository(pool)
	favouriteRepo := repository.NewFavouriteRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	premiumRepo := repository.NewPremiumRequestRepository(pool)
	storyRepo := repository.NewSuccessStoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager)

	accountService := service.NewAccountService(userRepo)
	biodataService := service.NewBiodataService(biodataRepo, counterRepo, dispatcher)
	favouriteService := service.NewFavouriteService(favouriteRepo)
	paymentService := service.NewPaymentService(paymentRepo, payments.NewStripeClient(cfg.Stripe.SecretKey), cfg.Stripe.Currency, dispatcher)
	premiumService := service.NewPremiumService(premiumRepo, dispatcher)
	storyService := service.NewStoryService(storyRepo, dispatcher)
	statsService := service.NewStatsService(biodataRepo, premiumRepo, paymentRepo, storyRepo)

	metrics := observability.NewMetrics()
	// emails ride in path segments, so %-escapes must decode before
	// guards and handlers read them
	app := fiber.New(fiber.Config{UnescapePath: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:       handlers.NewAuthHandler(tokenManager),
		Users:      handlers.NewUsersHandler(accountService),
		Biodata:    handlers.NewBiodataHandler(biodataService),
		Favourites: handlers.NewFavouritesHandler(favouriteService),
		Payments:   handlers.NewPaymentsHandler(paymentService),
		Premium:    handlers.NewPremiumHandler(premiumService),
		Stories:    handlers.NewStoriesHandler(storyService),
		Stats:      handlers.NewStatsHandler(statsService),
		Guards: httptransport.GuardSet{
			VerifyToken:  authMiddleware.VerifyToken(),
			RequireAdmin: auth.RequireAdmin(userRepo),
			RequireSelf:  auth.RequireSelf("email"),
		},
		StatsCache: httptransport.ResponseCache(cfg.Cache, redis.ClientHandle()),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
