package study

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/pkg/timefmt"
)

// Transcript slices embedded in prompts are bounded so requests stay inside
// the model's input limits.
const (
	summaryPromptChars   = 4000
	timestampPromptChars = 3000
	quizPromptChars      = 3000
	flashcardPromptChars = 2000
	notesPromptChars     = 2000
	difficultyChars      = 2000
)

// Valid summary depths. An empty depth means medium.
const (
	DepthShort    = "short"
	DepthMedium   = "medium"
	DepthDetailed = "detailed"
)

var depthInstructions = map[string]string{
	DepthShort:    "Write a brief summary of 2-3 sentences.",
	DepthMedium:   "Write a summary of 1-2 paragraphs.",
	DepthDetailed: "Write a detailed summary of 3-4 paragraphs covering all major points.",
}

// generateSummary asks the model for an overview at the requested depth and
// derives key points and topics from it. Any failure substitutes the
// deterministic fallback summary.
func (s *Service) generateSummary(ctx context.Context, transcript *entities.Transcript, depth string) (*entities.Summary, bool) {
	instruction, ok := depthInstructions[depth]
	if !ok {
		instruction = depthInstructions[DepthMedium]
	}

	prompt := fmt.Sprintf(`You are summarizing an educational video from its transcript.
%s
Respond with the summary text only, no headings or preamble.

Transcript:
%s`, instruction, truncate(transcript.FullText, summaryPromptChars))

	reply, err := s.model.GenerateContent(ctx, prompt)
	overview := strings.TrimSpace(reply)
	if err != nil || overview == "" {
		s.logger.Warn("summary generation failed, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(err))
		return fallbackSummary(transcript), true
	}

	readingTime := transcript.WordCount / 200
	if readingTime < 1 {
		readingTime = 1
	}

	return &entities.Summary{
		Overview:             overview,
		KeyPoints:            splitSentences(overview, 5),
		MainTopics:           extractKeyTerms(transcript.FullText, 5),
		DifficultyLevel:      s.classifyDifficulty(ctx, transcript),
		EstimatedReadingTime: readingTime,
	}, false
}

// classifyDifficulty asks the model for a single difficulty word. Anything
// other than a recognized level, including a failed call, yields
// intermediate. This never counts as a fallback on its own.
func (s *Service) classifyDifficulty(ctx context.Context, transcript *entities.Transcript) string {
	prompt := fmt.Sprintf(`Classify the difficulty of this video transcript for a student.
Answer with exactly one word: beginner, intermediate, or advanced.

Transcript:
%s`, truncate(transcript.FullText, difficultyChars))

	reply, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		return entities.DifficultyIntermediate
	}

	switch strings.ToLower(strings.TrimSpace(reply)) {
	case entities.DifficultyBeginner:
		return entities.DifficultyBeginner
	case entities.DifficultyAdvanced:
		return entities.DifficultyAdvanced
	default:
		return entities.DifficultyIntermediate
	}
}

type timestampReply struct {
	TimeSeconds float64  `json:"time_seconds"`
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func (s *Service) generateTimestamps(ctx context.Context, transcript *entities.Transcript) ([]entities.Timestamp, bool) {
	var lines strings.Builder
	for _, seg := range transcript.Segments {
		fmt.Fprintf(&lines, "[%s] %s\n", timefmt.FormatSeconds(seg.Start), seg.Text)
		if lines.Len() > timestampPromptChars {
			break
		}
	}

	prompt := fmt.Sprintf(`Identify the major topic changes in this timed video transcript.
Respond with a JSON array only, no other text. Each element:
{"time_seconds": <number>, "topic": "<short title>", "description": "<one sentence>", "keywords": ["<word>", ...]}

Transcript:
%s`, lines.String())

	reply, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("timestamp generation failed, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(err))
		return fallbackTimestamps(transcript), true
	}

	var parsed []timestampReply
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil || len(parsed) == 0 {
		s.logger.Warn("timestamp reply unparseable, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(err))
		return fallbackTimestamps(transcript), true
	}

	timestamps := make([]entities.Timestamp, 0, len(parsed))
	for _, item := range parsed {
		if strings.TrimSpace(item.Topic) == "" || item.TimeSeconds < 0 {
			continue
		}
		keywords := item.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		timestamps = append(timestamps, entities.Timestamp{
			Time:        timefmt.FormatSeconds(item.TimeSeconds),
			Seconds:     int(item.TimeSeconds),
			Topic:       strings.TrimSpace(item.Topic),
			Description: strings.TrimSpace(item.Description),
			Keywords:    keywords,
		})
	}
	if len(timestamps) == 0 {
		return fallbackTimestamps(transcript), true
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Seconds < timestamps[j].Seconds
	})
	return timestamps, false
}

func (s *Service) generateQuizzes(ctx context.Context, transcript *entities.Transcript, summary *entities.Summary) ([]entities.Quiz, bool) {
	comprehensive, err := s.generateQuiz(ctx, transcript, summary,
		"Comprehensive Quiz",
		"Create 5 multiple-choice questions covering the whole video.")
	if err != nil {
		s.logger.Warn("quiz generation failed, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(err))
		return []entities.Quiz{fallbackQuiz(summary)}, true
	}

	quizzes := []entities.Quiz{*comprehensive}

	// The concept quiz is best effort. Losing it degrades nothing the
	// caller was promised.
	if len(summary.MainTopics) > 0 {
		concepts, err := s.generateQuiz(ctx, transcript, summary,
			"Key Concepts Quiz",
			fmt.Sprintf("Create 3 multiple-choice questions focused on these concepts: %s.",
				strings.Join(summary.MainTopics, ", ")))
		if err != nil {
			s.logger.Debug("concept quiz skipped", zap.Error(err))
		} else {
			quizzes = append(quizzes, *concepts)
		}
	}
	return quizzes, false
}

func (s *Service) generateQuiz(ctx context.Context, transcript *entities.Transcript, summary *entities.Summary, title, instruction string) (*entities.Quiz, error) {
	prompt := fmt.Sprintf(`You are writing a quiz about an educational video.
%s
Every question must have exactly 4 options, and correct_answer must repeat one option verbatim.
Respond with JSON only, no other text:
{"title": "%s", "description": "<one sentence>", "questions": [{"question": "...", "options": ["...", "...", "...", "..."], "correct_answer": "...", "explanation": "...", "difficulty": "easy|medium|hard", "topic": "..."}]}

Video summary:
%s

Transcript:
%s`, instruction, title, summary.Overview, truncate(transcript.FullText, quizPromptChars))

	reply, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var quiz entities.Quiz
	if err := json.Unmarshal([]byte(extractJSON(reply)), &quiz); err != nil {
		return nil, fmt.Errorf("decode quiz reply: %w", err)
	}
	if err := validateQuiz(&quiz); err != nil {
		return nil, fmt.Errorf("quiz reply invalid: %w", err)
	}
	return &quiz, nil
}

func (s *Service) generateFlashcards(ctx context.Context, transcript *entities.Transcript, summary *entities.Summary) ([]entities.Flashcard, bool) {
	cards, err := s.flashcardsFromText(ctx, transcript.FullText, summary.Overview)
	if err != nil {
		s.logger.Warn("flashcard generation failed, using fallback",
			zap.String("video_id", transcript.VideoID),
			zap.Error(err))
		return fallbackFlashcards(summary, transcript.FullText), true
	}
	return cards, false
}

// flashcardsFromText is shared by video analysis and the standalone
// flashcard endpoint, where no summary context exists.
func (s *Service) flashcardsFromText(ctx context.Context, text, summaryContext string) ([]entities.Flashcard, error) {
	var contextBlock string
	if summaryContext != "" {
		contextBlock = "Summary:\n" + summaryContext + "\n\n"
	}

	prompt := fmt.Sprintf(`Create 10 study flashcards from this content.
Each front is a term or question, each back is a concise answer.
Respond with a JSON array only, no other text:
[{"front": "...", "back": "..."}]

%sContent:
%s`, contextBlock, truncate(text, flashcardPromptChars))

	reply, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.ErrModelCallFailed(err)
	}

	var parsed []entities.Flashcard
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		return nil, errors.ErrModelParseFailed(fmt.Errorf("decode flashcard reply: %w", err))
	}

	cards := make([]entities.Flashcard, 0, len(parsed))
	for _, card := range parsed {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			continue
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, errors.ErrModelParseFailed(fmt.Errorf("flashcard reply had no usable cards"))
	}
	return cards, nil
}

// notesFromModel asks for the study notes. The fallback is assembled by the
// orchestrator after all generators join, so it can include the timestamps.
func (s *Service) notesFromModel(ctx context.Context, transcript *entities.Transcript, summary *entities.Summary) (string, error) {
	prompt := fmt.Sprintf(`Write structured markdown study notes for this video.
Use headings, bullet points, and keep the notes faithful to the material.
Respond with the markdown only.

Summary:
%s

Transcript:
%s`, summary.Overview, truncate(transcript.FullText, notesPromptChars))

	reply, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		return "", errors.ErrModelCallFailed(err)
	}
	notes := strings.TrimSpace(reply)
	if notes == "" {
		return "", errors.ErrModelParseFailed(fmt.Errorf("empty notes reply"))
	}
	return notes, nil
}
