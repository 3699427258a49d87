package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bistro-service/internal/api/http"
	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/cache"
	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/observability"
	"github.com/spec-kit/bistro-service/internal/payment"
	"github.com/spec-kit/bistro-service/internal/persistence"
	"github.com/spec-kit/bistro-service/internal/repository"
	"github.com/spec-kit/bistro-service/internal/service"
	"github.com/spec-kit/bistro-service/internal/worker"
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
	menuRepo := repository.NewMenuRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	menuCache := cache.NewMenuCache(redis.Client, cfg.Cache.MenuTTL(), logger)
	idemStore := cache.NewIdempotencyStore(redis.Client, cfg.Cache.IdempotencyTTL())
	gateway := payment.NewStripeGateway(cfg.Stripe)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	sessionService := service.NewSessionService(tokenManager)
	userService := service.NewUserService(userRepo, dispatcher)
	catalogService := service.NewCatalogService(menuRepo, reviewRepo, menuCache)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(paymentRepo, gateway, idemStore, dispatcher, logger, cfg.Stripe.Currency)
	reportService := service.NewReportService(userRepo, menuRepo, paymentRepo)

	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Session:        handlers.NewSessionHandler(sessionService),
		Users:          handlers.NewUsersHandler(userService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Cart:           handlers.NewCartHandler(cartService),
		Checkout:       handlers.NewCheckoutHandler(checkoutService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
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
