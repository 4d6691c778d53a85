package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltmart/voltmart/internal/analytics"
	"github.com/voltmart/voltmart/internal/app"
	"github.com/voltmart/voltmart/internal/auth"
	"github.com/voltmart/voltmart/internal/authz"
	"github.com/voltmart/voltmart/internal/cart"
	"github.com/voltmart/voltmart/internal/orders"
	"github.com/voltmart/voltmart/internal/platform/cache"
	"github.com/voltmart/voltmart/internal/platform/db"
	"github.com/voltmart/voltmart/internal/products"
	"github.com/voltmart/voltmart/internal/shared"
	"github.com/voltmart/voltmart/internal/users"
	"github.com/voltmart/voltmart/internal/wishlist"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "voltmart_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager)

	usersRepo := users.NewRepository(dbpool)
	usersService := users.NewService(usersRepo)
	authzMiddleware := authz.Middleware{Roles: usersService, Logger: logger}
	usersHandler := users.NewHandler(logger, usersService, authzMiddleware)

	productsRepo := products.NewRepository(dbpool)
	productsService := products.NewService(productsRepo)
	productsHandler := products.NewHandler(logger, productsService, authzMiddleware)

	ordersRepo := orders.NewRepository(dbpool)
	ordersService := orders.NewService(ordersRepo)
	ordersHandler := orders.NewHandler(logger, ordersService, authzMiddleware)

	wishlistRepo := wishlist.NewRepository(dbpool)
	wishlistService := wishlist.NewService(wishlistRepo)
	wishlistHandler := wishlist.NewHandler(logger, wishlistService, authzMiddleware)

	analyticsRepo := analytics.NewRepository(dbpool)
	analyticsCache := analytics.NewCache(redisClient, cfg.DashboardCacheTTL)
	analyticsService := analytics.NewService(analyticsRepo, analyticsCache)
	analyticsHandler := analytics.NewHandler(logger, analyticsService, authzMiddleware)

	cartStorage := cart.NewRedisStorage(redisClient, cfg.CartTTL)
	cartService := cart.NewService(cartStorage, productsService)
	cartHandler := cart.NewHandler(logger, cartService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		SessionManager:   sessionManager,
		CSRFManager:      csrfManager,
		AuthHandler:      authHandler,
		ProductsHandler:  productsHandler,
		OrdersHandler:    ordersHandler,
		UsersHandler:     usersHandler,
		WishlistHandler:  wishlistHandler,
		AnalyticsHandler: analyticsHandler,
		CartHandler:      cartHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
