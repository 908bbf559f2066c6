package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/food-order-service/internal/api/http"
	"github.com/spec-kit/food-order-service/internal/api/http/handlers"
	"github.com/spec-kit/food-order-service/internal/catalog"
	"github.com/spec-kit/food-order-service/internal/config"
	"github.com/spec-kit/food-order-service/internal/events"
	"github.com/spec-kit/food-order-service/internal/observability"
	"github.com/spec-kit/food-order-service/internal/persistence"
	"github.com/spec-kit/food-order-service/internal/provider"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/internal/service"
	"github.com/spec-kit/food-order-service/internal/worker"
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

	menu, err := catalog.Load(cfg.App.MenuPath)
	if err != nil {
		logger.Fatal("failed to load menu catalog", zap.Error(err))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	tokenStore := repository.NewRedisTokenStore(redis.Client)
	cartStore := repository.NewRedisCartStore(redis.Client)

	var userStore repository.UserStore
	var orderStore repository.OrderStore
	if pool := pg.PoolHandle(); pool != nil {
		userStore = repository.NewPostgresUserStore(pool)
		orderStore = repository.NewPostgresOrderStore(pool)
	} else {
		userStore = repository.NewRedisUserStore(redis.Client)
		orderStore = repository.NewRedisOrderStore(redis.Client)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.NewArchivalWorker(orderStore, logger).Register(dispatcher)

	accountService := service.NewAccountService(userStore, cartStore, dispatcher, cfg.Auth.HashingSecret)
	sessionService := service.NewSessionService(userStore, tokenStore, cfg.Auth.HashingSecret, cfg.Auth.TokenTTL())
	cartService := service.NewCartService(cartStore, menu)

	checkoutService := service.NewCheckoutService(service.CheckoutDependencies{
		Carts:      cartStore,
		Menu:       menu,
		Payments:   provider.NewPaymentClient(cfg.Payment),
		Mailer:     provider.NewEmailClient(cfg.Email),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	metrics := observability.NewMetrics()
	requestDispatcher := httptransport.NewDispatcher(httptransport.RouteConfig{
		Ping:     handlers.NewPingHandler(),
		Users:    handlers.NewUsersHandler(accountService, sessionService),
		Sessions: handlers.NewSessionHandler(sessionService),
		Menu:     handlers.NewMenuHandler(menu, sessionService),
		Cart:     handlers.NewCartHandler(cartService, sessionService),
		Checkout: handlers.NewCheckoutHandler(checkoutService, sessionService),
	}, logger, metrics)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	requestDispatcher.Mount(app)

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.App.HTTPAddr()),
			zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.HTTPAddr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	if tlsAddr := cfg.App.HTTPSAddr(); tlsAddr != "" {
		go func() {
			logger.Info("listening tls",
				zap.String("addr", tlsAddr),
				zap.String("env", cfg.App.Env))
			if err := app.ListenTLS(tlsAddr, cfg.App.CertFile, cfg.App.KeyFile); err != nil {
				logger.Fatal("fiber listen tls", zap.Error(err))
			}
		}()
	}

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
