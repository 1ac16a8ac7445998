package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"mockmate/resume-checker/internal/cache"
	"mockmate/resume-checker/internal/config"
	"mockmate/resume-checker/internal/handlers"
	"mockmate/resume-checker/internal/logging"
	"mockmate/resume-checker/internal/repositories"
	"mockmate/resume-checker/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "resume-checker",
	})
	log.Logger = appLogger
	appLogger.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize model provider
	generator, err := services.NewTextGenerator(ctx, cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Failed to initialize text generator")
	}
	appLogger.Info().Str("provider", cfg.LLM.Provider).Str("model", cfg.LLM.Model).Msg("✅ Text generator initialized")

	var analyzerOpts []services.AnalyzerOption

	// Initialize result cache
	var resultCache *cache.RedisClient
	if cfg.Cache.Enabled {
		resultCache, err = cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			appLogger.Fatal().Err(err).Msg("❌ Failed to initialize result cache")
		}
		analyzerOpts = append(analyzerOpts, services.WithResultCache(resultCache, cfg.Cache.TTL))
		appLogger.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("✅ Result cache initialized")
	}

	// Initialize analysis history
	var (
		historyWorker  services.HistoryWorker
		historyHandler *handlers.HistoryHandler
	)
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("❌ Failed to initialize database")
		}

		analysisRepo := repositories.NewAnalysisRepository(db)
		historyWorker = services.NewHistoryWorker(analysisRepo, cfg.History.Workers, 100, appLogger)
		historyWorker.Start(ctx)
		analyzerOpts = append(analyzerOpts, services.WithHistory(historyWorker))
		historyHandler = handlers.NewHistoryHandler(analysisRepo)
		appLogger.Info().Msg("✅ Analysis history enabled")
	}

	analyzer := services.NewAnalyzerService(
		services.NewDocumentExtractor(),
		generator,
		appLogger,
		analyzerOpts...,
	)
	resumeHandler := handlers.NewResumeHandler(
		analyzer,
		services.NewUploadReader(cfg.Upload.MaxFileSize),
		appLogger,
	)
	appLogger.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MockMate Resume Checker API",
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
		BodyLimit:    handlers.BodyLimit(cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.NewErrorHandler(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	handlers.SetupRoutes(app, resumeHandler, historyHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		appLogger.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			appLogger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLogger.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Failed to start server")
	}

	if historyWorker != nil {
		historyWorker.Stop()
	}
	if resultCache != nil {
		if err := resultCache.Close(); err != nil {
			appLogger.Warn().Err(err).Msg("⚠️ Failed to close result cache")
		}
	}
	appLogger.Info().Msg("✅ Server stopped")
}
