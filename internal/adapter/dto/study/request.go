package study

import "github.com/aistudybuddy/study-buddy/internal/domain/entities"

// AnalyzeRequest asks for full study materials for one video.
type AnalyzeRequest struct {
	URL          string `json:"url" validate:"required,url"`
	SummaryDepth string `json:"summary_depth" validate:"omitempty,oneof=short medium detailed"`
}

// TranscriptRequest asks for the normalized transcript only.
type TranscriptRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// FlashcardRequest asks for cards generated from pre-supplied study text,
// with an optional summary for extra context.
type FlashcardRequest struct {
	TranscriptText string `json:"transcript_text" validate:"required"`
	SummaryText    string `json:"summary_text"`
}

// ValidateQuizRequest submits answers for grading. Answers are keyed by
// question index.
type ValidateQuizRequest struct {
	Quiz    entities.Quiz  `json:"quiz" validate:"required"`
	Answers map[int]string `json:"answers" validate:"required"`
}
