package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/yukikurage/halisaha-api/internal/config"
	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/database"
	"github.com/yukikurage/halisaha-api/internal/handlers"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
	"github.com/yukikurage/halisaha-api/internal/services"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	usersColl, matchesColl, closeStorage, err := openCollections(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	userRepo := repository.NewUserRepository(storage.NewStore(usersColl))
	matchRepo := repository.NewMatchRepository(storage.NewStore(matchesColl))

	authService := services.NewAuthService(userRepo)
	matchService := services.NewMatchService(matchRepo, userRepo, logger)
	catalogService := services.NewCatalogService()

	if cfg.SeedMatches {
		if err := services.SeedMatches(context.Background(), catalogService, userRepo, matchRepo, logger); err != nil {
			return err
		}
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	if !cfg.IsProduction() {
		r.Use(gin.Logger())
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}
	// Configure session options based on environment
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Halı Saha API is running",
		})
	})

	handlers.RegisterRoutes(r.Group("/api"),
		handlers.NewAuthHandler(authService),
		handlers.NewMatchHandler(matchService),
		handlers.NewCatalogHandler(catalogService),
	)

	var handler http.Handler = r
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler(r)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

// openCollections builds the user and match collections for the configured
// storage driver. The returned func releases backend connections.
func openCollections(cfg *config.Config, logger *slog.Logger) (storage.Collection[models.User], storage.Collection[models.Match], func(), error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		return storage.NewJSONFile[models.User](filepath.Join(cfg.DataDir, "users.json"), logger),
			storage.NewJSONFile[models.Match](filepath.Join(cfg.DataDir, "matches.json"), logger),
			func() {}, nil

	case config.StorageMySQL, config.StoragePostgres, config.StorageSQLite:
		if err := database.Connect(cfg, logger); err != nil {
			return nil, nil, nil, err
		}
		if err := database.Migrate(logger); err != nil {
			return nil, nil, nil, err
		}
		db := database.GetDB()
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return storage.NewGorm[models.User](db, constants.CollectionUsers, logger),
			storage.NewGorm[models.Match](db, constants.CollectionMatches, logger),
			closeDB, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			client.Close()
			return nil, nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return storage.NewRedis[models.User](client, "halisaha:"+constants.CollectionUsers, logger),
			storage.NewRedis[models.Match](client, "halisaha:"+constants.CollectionMatches, logger),
			func() { client.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		store, err := redisStore.NewStore(
			10,                        // Redis pool size
			"tcp",                     // network type
			cfg.RedisAddr(),           // Redis address from config
			cfg.RedisPassword,         // password
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis session store: %w", err)
		}
		return store, nil
	case config.SessionStoreCookie:
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
