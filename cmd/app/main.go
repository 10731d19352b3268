package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "blogpost/internal/adapters/database"
	fileadapter "blogpost/internal/adapters/file"
	"blogpost/internal/adapters/httpapi"
	redisadapter "blogpost/internal/adapters/redis"
	"blogpost/internal/config"
	postapp "blogpost/internal/core/post/service"
	postPort "blogpost/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to optional YAML configuration file")
	flag.Parse()

	dotenv := config.LoadDotEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	config.InitLogger(cfg.App.Env)
	defer config.SyncLogger()
	if !dotenv {
		config.Logger.Info("No .env file found, using system environment variables")
	}

	if cfg.App.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		config.Logger.Fatal("Failed to open post store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closeResources()

	postSvc := postapp.NewPostService(store, config.Logger)
	r := httpapi.SetupRoutes(postSvc, config.Logger)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Info("App is running", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// openStore builds the post store for the configured driver.
func openStore(ctx context.Context, cfg *config.Config) (postPort.PostStore, error) {
	switch cfg.Store.Driver {
	case config.DriverMySQL:
		db, err := config.InitDB(cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		store := dbadapter.NewPostStoreDatabase(db)
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate posts table: %w", err)
		}
		config.Logger.Info("Database migrations completed")
		return store, nil
	case config.DriverRedis:
		client, err := config.InitRedis(ctx, cfg.Store.Redis)
		if err != nil {
			return nil, err
		}
		return redisadapter.NewPostStoreRedis(client, cfg.Store.Redis.Key), nil
	default:
		config.Logger.Info("Using JSON file store", zap.String("path", cfg.Store.File))
		return fileadapter.NewPostStoreFile(cfg.Store.File), nil
	}
}

// closeResources closes whatever backend connections were opened.
func closeResources() {
	config.CloseRedis()
	config.CloseDB()
}
