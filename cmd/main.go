// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"scrum_sensei/internal/config"
	"scrum_sensei/internal/handlers"
	"scrum_sensei/internal/repository"
	"scrum_sensei/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	if err := run(logger); err != nil {
		slog.Error("Application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	log.Println("Server exiting")
}

func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 統計キャッシュ (Redis)。接続できなくても起動は続ける
	var statsCache repository.StatsCache
	if config.Cfg.Redis.Addr != "" {
		rdb, err := repository.NewRedisClient(ctx, config.Cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, stats cache disabled", slog.Any("error", err))
		} else {
			defer rdb.Close()
			statsCache = repository.NewRedisStatsCache(rdb, config.Cfg.Redis.StatsTTL)
			slog.Info("Stats cache enabled", slog.String("addr", config.Cfg.Redis.Addr))
		}
	}

	// Dependency Injection
	contentRepo := repository.NewGormContentRepository()
	progressRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()

	progressService := service.NewProgressService(db, progressRepo, contentRepo, statsCache, config.Cfg.App.TopicLimit)
	contentService := service.NewContentService(db, contentRepo, progressRepo, quizRepo, statsCache)
	quizService := service.NewQuizService(db, quizRepo, contentRepo, progressRepo, progressService)

	router := handlers.NewRouter(db, config.Cfg.CORS, logger, handlers.Handlers{
		Progress: handlers.NewProgressHandler(progressService, logger),
		Content:  handlers.NewContentHandler(contentService, logger),
		Quiz:     handlers.NewQuizHandler(quizService, logger),
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server forced to shutdown", slog.Any("error", err))
			return err
		}
		return nil
	})

	return g.Wait()
}
