package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	studydto "github.com/aistudybuddy/study-buddy/internal/adapter/dto/study"
	"github.com/aistudybuddy/study-buddy/internal/usecase/study"
	ytuse "github.com/aistudybuddy/study-buddy/internal/usecase/youtube"
)

// Study handles the video analysis HTTP surface.
type Study struct {
	studyService *study.Service
	videoService *ytuse.Service
	jobs         *study.JobManager
	logger       *zap.Logger
}

// NewStudy creates a new study handler
func NewStudy(studyService *study.Service, videoService *ytuse.Service, jobs *study.JobManager, logger *zap.Logger) *Study {
	return &Study{
		studyService: studyService,
		videoService: videoService,
		jobs:         jobs,
		logger:       logger,
	}
}

// AnalyzeVideo runs the full pipeline synchronously
// POST /v1/videos/analyze
func (h *Study) AnalyzeVideo(c echo.Context) error {
	req, err := bindAnalyzeRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	analysis, err := h.studyService.Analyze(c.Request().Context(), req.URL, req.SummaryDepth)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, analysis)
}

// AnalyzeVideoAsync enqueues the pipeline and returns the job immediately
// POST /v1/videos/analyze/async
func (h *Study) AnalyzeVideoAsync(c echo.Context) error {
	req, err := bindAnalyzeRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// Reject obviously bad URLs before queueing so the caller learns about
	// them synchronously.
	if _, err := ytuse.ExtractVideoID(req.URL); err != nil {
		return HandleError(h.logger, c, err)
	}

	job := h.jobs.Submit(req.URL, req.SummaryDepth)
	return HandleAccepted(h.logger, c, job)
}

// GetJob reports the state of a background analysis
// GET /v1/jobs/:id
func (h *Study) GetJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("job id must be a UUID"))
	}

	job, err := h.jobs.Get(id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, job)
}

// GetTranscript returns the normalized transcript without analysis
// POST /v1/videos/transcript
func (h *Study) GetTranscript(c echo.Context) error {
	var req studydto.TranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	videoID, err := ytuse.ExtractVideoID(req.URL)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	transcript, err := h.videoService.GetTranscriptStrict(c.Request().Context(), videoID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, studydto.NewTranscriptResponse(transcript))
}

// GenerateFlashcards creates cards from arbitrary study text
// POST /v1/flashcards
func (h *Study) GenerateFlashcards(c echo.Context) error {
	var req studydto.FlashcardRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	cards, fellBack, err := h.studyService.GenerateFlashcards(c.Request().Context(), req.TranscriptText, req.SummaryText)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, studydto.FlashcardResponse{
		Flashcards:   cards,
		FallbackUsed: fellBack,
	})
}

// ValidateQuiz grades submitted answers against a quiz
// POST /v1/quizzes/validate
func (h *Study) ValidateQuiz(c echo.Context) error {
	var req studydto.ValidateQuizRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	grade, err := study.GradeQuiz(&req.Quiz, req.Answers)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, grade)
}

// ExportAnalysis is a placeholder until document rendering lands
// GET /v1/videos/:id/export
func (h *Study) ExportAnalysis(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = "markdown"
	}

	switch format {
	case "markdown", "pdf":
	default:
		return HandleError(h.logger, c, errors.ErrExportFormatUnsupported(format))
	}

	return HandleSuccess(h.logger, c, studydto.ExportResponse{
		VideoID: c.Param("id"),
		Format:  format,
		Status:  "not_implemented",
		Message: "Export rendering is not available yet",
	})
}

func bindAnalyzeRequest(c echo.Context) (*studydto.AnalyzeRequest, error) {
	var req studydto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}
	if req.SummaryDepth == "" {
		req.SummaryDepth = study.DepthMedium
	}
	return &req, nil
}
