package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/architect/city-events/internal/auth"
	authHandlers "github.com/architect/city-events/internal/auth/handlers"
	catalogHandlers "github.com/architect/city-events/internal/catalog/handlers"
	catalogModels "github.com/architect/city-events/internal/catalog/models"
	catalogRepository "github.com/architect/city-events/internal/catalog/repository"
	catalogServices "github.com/architect/city-events/internal/catalog/services"
	"github.com/architect/city-events/internal/common/database"
	commonHandlers "github.com/architect/city-events/internal/common/handlers"
	"github.com/architect/city-events/internal/common/health"
	"github.com/architect/city-events/internal/common/middleware"
	favoriteHandlers "github.com/architect/city-events/internal/favorites/handlers"
	favoriteModels "github.com/architect/city-events/internal/favorites/models"
	favoriteRepository "github.com/architect/city-events/internal/favorites/repository"
	favoriteServices "github.com/architect/city-events/internal/favorites/services"
	"github.com/architect/city-events/pkg/config"
	"github.com/architect/city-events/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (SQLite for development, PostgreSQL for production)
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.DB.AutoMigrate(
		&database.User{},
		&database.Session{},
		&catalogModels.EventRecord{},
		&favoriteModels.FavoriteRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Wire repositories and services
	eventRepo := catalogRepository.NewEventRepository(database.DB)
	favoriteRepo := favoriteRepository.NewFavoriteRepository(database.DB)

	catalogService := catalogServices.NewCatalogService(eventRepo)
	favoritesManager := favoriteServices.NewManager(favoriteRepo, cfg.Catalog.WriteTimeout)
	authProvider := auth.NewLocalProvider(database.DB, cfg.Session.TTL)
	authService := auth.NewService(authProvider)

	// Create Gin engine
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(database.GetDB(), "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)

	// API v1 routes
	catalogHandler := catalogHandlers.NewCatalogHandler(catalogService)
	favoritesHandler := favoriteHandlers.NewFavoritesHandler(favoritesManager)
	authHandler := authHandlers.NewAuthHandler(authProvider)
	requireAuth := middleware.AuthRequired(authService.ResolveToken)

	v1 := router.Group("/api/v1")
	{
		events := v1.Group("/events")
		{
			events.GET("", catalogHandler.ListEvents)
			events.GET("/surprise", catalogHandler.Surprise)
			events.GET("/:id", catalogHandler.GetEvent)
		}

		v1.GET("/categories", catalogHandler.Categories)

		favoritesGroup := v1.Group("/favorites", requireAuth)
		{
			favoritesGroup.GET("", favoritesHandler.List)
			favoritesGroup.POST("/toggle", favoritesHandler.Toggle)
		}

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", authHandler.Me)
		}
	}

	// Admin listener: prometheus metrics plus health, on its own port
	adminRouter := chi.NewRouter()
	adminRouter.Use(chimiddleware.Recoverer)
	adminRouter.Handle("/metrics", promhttp.Handler())
	adminRouter.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if healthChecker.IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	apiServer := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}
	adminServer := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Admin.Port,
		Handler: adminRouter,
	}

	go func() {
		logger.Log.Sugar().Infow("admin listener starting", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Sugar().Errorw("admin listener failed", "error", err)
		}
	}()

	go func() {
		logger.Log.Sugar().Infow("server starting", "addr", apiServer.Addr, "env", cfg.Server.Env)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Sugar().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = adminServer.Shutdown(ctx)
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
