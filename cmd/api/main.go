// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/health"
	"github.com/carterperez-dev/travel-marketplace/internal/middleware"
	"github.com/carterperez-dev/travel-marketplace/internal/router"
	"github.com/carterperez-dev/travel-marketplace/internal/server"
	"github.com/carterperez-dev/travel-marketplace/internal/session"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog := setupLogger(cfg.Log)
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Otel.Endpoint)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"dialect", db.Dialect,
		"max_open_conns", db.Stats().MaxOpenConnections,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis != nil {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	var store session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		store = session.NewRedisStore(redis.Raw())
	default:
		memory := session.NewMemoryStore(cfg.Session.SweepInterval)
		go memory.Run(ctx)
		store = memory
	}
	sessions := session.NewManager(store, cfg.Session)
	logger.Info("session store ready", "store", cfg.Session.Store)

	api := router.New(db, sessions)

	if cfg.Seed.OnStart {
		n, seedErr := api.SeedDestinations(ctx)
		if seedErr != nil {
			return seedErr
		}
		logger.Info("destinations seeded", "inserted", n)
	}

	healthHandler := health.NewHandler(db)
	if redis != nil {
		healthHandler.AddCheck("redis", redis)
	}

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	mux := srv.Router()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Tracing)
	mux.Use(middleware.Logger(logger))
	mux.Use(chimw.Recoverer)
	mux.Use(
		middleware.NewRateLimiter(ctx, redis.Raw(), middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	mux.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	mux.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(mux)
	api.Register(mux)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// setupLogger builds the slog logger. File output goes through lumberjack
// so logs rotate by size and age.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func()) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var (
		out     io.Writer = os.Stdout
		closeFn           = func() {}
	)
	if cfg.Output == "file" || cfg.Output == "both" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		closeFn = func() {
			//nolint:errcheck // process is exiting
			_ = rotator.Close()
		}
		out = rotator
		if cfg.Output == "both" {
			out = io.MultiWriter(os.Stdout, rotator)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), closeFn
}
