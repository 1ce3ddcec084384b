package study

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	ytuse "github.com/aistudybuddy/study-buddy/internal/usecase/youtube"
)

// TextGenerator is the language-model capability the generators depend on.
// *gemini.Client satisfies it in production.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TranscriptProvider supplies normalized transcripts for video IDs.
type TranscriptProvider interface {
	GetTranscript(ctx context.Context, videoID string) (*entities.Transcript, error)
}

// Service orchestrates the study-material generators for one video.
type Service struct {
	model  TextGenerator
	videos TranscriptProvider
	logger *zap.Logger
}

func NewService(model TextGenerator, videos TranscriptProvider, logger *zap.Logger) *Service {
	return &Service{
		model:  model,
		videos: videos,
		logger: logger,
	}
}

// Analyze runs the full pipeline: resolve the video, fetch its transcript,
// then produce summary, timestamps, quizzes, flashcards, and notes. The
// summary runs first because the later prompts embed it; the rest run
// concurrently. Generator failures degrade to deterministic fallbacks rather
// than failing the request.
func (s *Service) Analyze(ctx context.Context, videoURL, summaryDepth string) (*entities.VideoAnalysis, error) {
	videoID, err := ytuse.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	transcript, err := s.videos.GetTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting video analysis",
		zap.String("video_id", videoID),
		zap.Int("word_count", transcript.WordCount),
		zap.Bool("mock_transcript", transcript.IsMock))

	summary, summaryFellBack := s.generateSummary(ctx, transcript, summaryDepth)

	var (
		wg         sync.WaitGroup
		timestamps []entities.Timestamp
		quizzes    []entities.Quiz
		flashcards []entities.Flashcard
		notes      string
		notesErr   error

		tsFellBack    bool
		quizFellBack  bool
		cardsFellBack bool
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		timestamps, tsFellBack = s.generateTimestamps(ctx, transcript)
	}()
	go func() {
		defer wg.Done()
		quizzes, quizFellBack = s.generateQuizzes(ctx, transcript, summary)
	}()
	go func() {
		defer wg.Done()
		flashcards, cardsFellBack = s.generateFlashcards(ctx, transcript, summary)
	}()
	go func() {
		defer wg.Done()
		notes, notesErr = s.notesFromModel(ctx, transcript, summary)
	}()
	wg.Wait()

	// The notes fallback is built after the join so it can fold in whatever
	// timestamps the request ended up with.
	notesFellBack := false
	if notesErr != nil {
		s.logger.Warn("notes generation failed, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(notesErr))
		notes = fallbackNotes(summary, timestamps)
		notesFellBack = true
	}

	fallbackUsed := summaryFellBack || tsFellBack || quizFellBack || cardsFellBack || notesFellBack
	status := entities.StatusCompleted
	if transcript.IsMock {
		status = entities.StatusUsingMockData
	}

	s.logger.Info("video analysis finished",
		zap.String("video_id", videoID),
		zap.String("status", status),
		zap.Bool("fallback_used", fallbackUsed))

	return &entities.VideoAnalysis{
		VideoID:      videoID,
		Title:        fmt.Sprintf("Video %s", videoID),
		Duration:     transcript.Duration(),
		Summary:      summary,
		Timestamps:   timestamps,
		Quizzes:      quizzes,
		Flashcards:   flashcards,
		Notes:        notes,
		Status:       status,
		FallbackUsed: fallbackUsed,
	}, nil
}

// GenerateFlashcards produces cards from pre-supplied study text, outside of
// any video context. An optional summary enriches the prompt; without one the
// fallback derives terms straight from the text.
func (s *Service) GenerateFlashcards(ctx context.Context, text, summaryText string) ([]entities.Flashcard, bool, error) {
	if text == "" {
		return nil, false, errors.ErrInvalidArgument("transcript_text must not be empty")
	}

	cards, err := s.flashcardsFromText(ctx, text, summaryText)
	if err != nil {
		s.logger.Warn("standalone flashcard generation failed, using fallback", zap.Error(err))
		var summary *entities.Summary
		if summaryText != "" {
			summary = &entities.Summary{
				Overview:  summaryText,
				KeyPoints: splitSentences(summaryText, fallbackFlashcardLimit),
			}
		}
		fallback := fallbackFlashcards(summary, text)
		if len(fallback) == 0 {
			return nil, false, err
		}
		return fallback, true, nil
	}
	return cards, false, nil
}
