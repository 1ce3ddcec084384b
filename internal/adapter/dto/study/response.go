package study

import (
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

// TranscriptResponse is the transcript-only payload.
type TranscriptResponse struct {
	VideoID   string                       `json:"video_id"`
	Language  string                       `json:"language"`
	Segments  []entities.TranscriptSegment `json:"segments"`
	FullText  string                       `json:"full_text"`
	WordCount int                          `json:"word_count"`
	IsMock    bool                         `json:"is_mock"`
}

// NewTranscriptResponse maps the domain transcript onto the wire shape.
func NewTranscriptResponse(tr *entities.Transcript) *TranscriptResponse {
	return &TranscriptResponse{
		VideoID:   tr.VideoID,
		Language:  tr.Language,
		Segments:  tr.Segments,
		FullText:  tr.FullText,
		WordCount: tr.WordCount,
		IsMock:    tr.IsMock,
	}
}

// FlashcardResponse wraps generated cards with the fallback marker.
type FlashcardResponse struct {
	Flashcards   []entities.Flashcard `json:"flashcards"`
	FallbackUsed bool                 `json:"fallback_used"`
}

// ExportResponse is the placeholder payload for analysis export.
type ExportResponse struct {
	VideoID string `json:"video_id"`
	Format  string `json:"format"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
