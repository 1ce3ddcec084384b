// Package youtube implements the transcript-acquisition pipeline: video
// identifier extraction, caption normalization, and transcript assembly.
package youtube

import (
	"context"
	stdErrors "errors"

	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/pkg/config"
	ytclient "github.com/aistudybuddy/study-buddy/pkg/youtube"
)

// CaptionFetcher is the outbound collaborator delivering raw caption blobs.
type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, videoID string) ([]byte, error)
}

// Service acquires transcripts for videos.
type Service struct {
	captions    CaptionFetcher
	language    string
	mockEnabled bool
	logger      *zap.Logger
}

// NewService constructs a transcript service.
func NewService(captions CaptionFetcher, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		captions:    captions,
		language:    cfg.YouTube.Language,
		mockEnabled: cfg.Analysis.MockTranscriptEnabled,
		logger:      logger,
	}
}

// GetTranscript fetches and assembles the transcript for a video. Caption
// fetch and format failures degrade to the mock transcript when substitution
// is enabled; with substitution disabled they surface as a not-found error.
func (s *Service) GetTranscript(ctx context.Context, videoID string) (*entities.Transcript, error) {
	segments, err := s.fetchSegments(ctx, videoID)
	if err != nil {
		if !s.mockEnabled {
			if stdErrors.Is(err, ytclient.ErrNoCaptions) {
				return nil, errors.ErrTranscriptNotFound(videoID)
			}
			return nil, err
		}
		if s.logger != nil {
			s.logger.Warn("caption acquisition failed, substituting mock transcript",
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
		segments = nil
	}

	transcript := BuildTranscript(videoID, s.language, segments)
	if transcript.IsMock && !s.mockEnabled {
		return nil, errors.ErrTranscriptNotFound(videoID)
	}
	return transcript, nil
}

// GetTranscriptStrict fetches and assembles the transcript without mock
// substitution; the transcript-only endpoint reports acquisition failures
// instead of masking them.
func (s *Service) GetTranscriptStrict(ctx context.Context, videoID string) (*entities.Transcript, error) {
	segments, err := s.fetchSegments(ctx, videoID)
	if err != nil {
		if stdErrors.Is(err, ytclient.ErrNoCaptions) {
			return nil, errors.ErrTranscriptNotFound(videoID)
		}
		return nil, err
	}
	if len(segments) == 0 {
		return nil, errors.ErrTranscriptNotFound(videoID)
	}
	return BuildTranscript(videoID, s.language, segments), nil
}

func (s *Service) fetchSegments(ctx context.Context, videoID string) ([]entities.CaptionSegment, error) {
	raw, err := s.captions.FetchCaptions(ctx, videoID)
	if err != nil {
		if stdErrors.Is(err, ytclient.ErrNoCaptions) {
			return nil, err
		}
		return nil, errors.ErrCaptionFetchFailed(videoID, err)
	}
	return NormalizeCaptions(raw)
}
