package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabrieldubiela/DocControl/internal/api"
	"github.com/gabrieldubiela/DocControl/internal/auth"
	"github.com/gabrieldubiela/DocControl/internal/config"
	"github.com/gabrieldubiela/DocControl/internal/db"
	"github.com/gabrieldubiela/DocControl/internal/gemini"
	"github.com/gabrieldubiela/DocControl/internal/render"
	"github.com/gabrieldubiela/DocControl/internal/services"
	"github.com/gabrieldubiela/DocControl/pkg/logger"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional; deployment environments inject real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Logging.Environment, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	config.LogConfig(cfg, zapLogger)

	database, err := db.Initialize(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	collector := metrics.NewCollector()
	tokens := auth.NewTokenManager([]byte(cfg.Security.JWTSecret), cfg.Security.TokenTTL)

	store, err := render.NewDiskStore(cfg.Storage.Dir, cfg.Storage.PublicBaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to initialize artifact store", zap.Error(err))
	}
	engine := render.NewChromeEngine(cfg.Render.Timeout)
	renderService := render.NewService(engine, store, zapLogger, collector)

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithTimeout(cfg.Gemini.Timeout),
	)

	documentService := services.NewDocumentService(database, zapLogger, collector)
	templateService := services.NewTemplateService(database, zapLogger)
	signatureService := services.NewSignatureService(database, zapLogger, collector)
	generationService := services.NewGenerationService(geminiClient, zapLogger, collector)

	router := api.NewRouter(
		cfg,
		zapLogger,
		collector,
		tokens,
		documentService,
		templateService,
		signatureService,
		generationService,
		renderService,
		store.Dir(),
		database,
	)
	router.SetupRoutes()

	port := cfg.Server.Port
	go func() {
		if err := router.Run(":" + port); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	zapLogger.Info("Server started", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
	zapLogger.Info("Server gracefully stopped")
}
