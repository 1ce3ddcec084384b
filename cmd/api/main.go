package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aistudybuddy/study-buddy/internal/adapter/handler"
	"github.com/aistudybuddy/study-buddy/internal/infrastructure/jobstore"
	studyuse "github.com/aistudybuddy/study-buddy/internal/usecase/study"
	ytuse "github.com/aistudybuddy/study-buddy/internal/usecase/youtube"
	"github.com/aistudybuddy/study-buddy/pkg/config"
	"github.com/aistudybuddy/study-buddy/pkg/gemini"
	pkgvalidator "github.com/aistudybuddy/study-buddy/pkg/validator"
	ytclient "github.com/aistudybuddy/study-buddy/pkg/youtube"
)

// @title           Study Buddy API
// @version         1.0
// @description     API that turns YouTube videos into study materials: summaries, timestamps, quizzes, flashcards, and notes.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("Initializing dependencies...")

	captionClient := ytclient.NewClient(&cfg.YouTube)
	videoService := ytuse.NewService(captionClient, cfg, logger)

	geminiClient := gemini.NewClient(&cfg.Gemini)
	studyService := studyuse.NewService(geminiClient, videoService, logger)

	jobStore := jobstore.NewMemoryStore(cfg.Analysis.JobRetention)
	defer jobStore.Close()
	jobManager := studyuse.NewJobManager(studyService, jobStore, cfg.Analysis.JobTimeout, logger)

	studyHandler := handler.NewStudy(studyService, videoService, jobManager, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, studyHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		log.Printf("Environment: %s", cfg.Server.Environment)
		log.Printf("Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
