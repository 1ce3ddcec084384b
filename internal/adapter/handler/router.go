package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aistudybuddy/study-buddy/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	studyHandler *Study
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, studyHandler *Study) *Router {
	return &Router{
		cfg:          cfg,
		studyHandler: studyHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupVideoRoutes(v1)
	rt.setupStudyRoutes(v1)
}

// setupVideoRoutes configures the video analysis routes
func (rt *Router) setupVideoRoutes(g *echo.Group) {
	videos := g.Group("/videos")
	videos.POST("/analyze", rt.studyHandler.AnalyzeVideo)
	videos.POST("/analyze/async", rt.studyHandler.AnalyzeVideoAsync)
	videos.POST("/transcript", rt.studyHandler.GetTranscript)
	videos.GET("/:id/export", rt.studyHandler.ExportAnalysis)

	g.GET("/jobs/:id", rt.studyHandler.GetJob)
}

// setupStudyRoutes configures the standalone study-material routes
func (rt *Router) setupStudyRoutes(g *echo.Group) {
	g.POST("/flashcards", rt.studyHandler.GenerateFlashcards)
	g.POST("/quizzes/validate", rt.studyHandler.ValidateQuiz)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "study-buddy",
	})
}
