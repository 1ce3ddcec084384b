package study

import (
	"fmt"
	"strings"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/pkg/timefmt"
)

// Deterministic substitutes used when a model call fails or its reply cannot
// be parsed. Same transcript in, same materials out, so degraded responses
// stay reproducible.

const fallbackOverview = "This video covers various topics discussed in the transcript. " +
	"The content appears to be educational in nature and provides information " +
	"on the subject matter covered throughout the video."

const (
	fallbackTimestampChunks = 5
	fallbackQuizQuestions   = 5
	fallbackFlashcardLimit  = 10
)

func fallbackSummary(transcript *entities.Transcript) *entities.Summary {
	readingTime := transcript.WordCount / 200
	if readingTime < 1 {
		readingTime = 1
	}
	return &entities.Summary{
		Overview:             fallbackOverview,
		KeyPoints:            splitSentences(fallbackOverview, 5),
		MainTopics:           extractKeyTerms(transcript.FullText, 5),
		DifficultyLevel:      entities.DifficultyIntermediate,
		EstimatedReadingTime: readingTime,
	}
}

// fallbackTimestamps slices the transcript into up to five even sections.
func fallbackTimestamps(transcript *entities.Transcript) []entities.Timestamp {
	segments := transcript.Segments
	if len(segments) == 0 {
		return []entities.Timestamp{}
	}

	chunkSize := len(segments) / fallbackTimestampChunks
	if chunkSize < 1 {
		chunkSize = 1
	}

	timestamps := make([]entities.Timestamp, 0, fallbackTimestampChunks)
	for i := 0; i < len(segments); i += chunkSize {
		start := segments[i].Start
		endIdx := i + chunkSize - 1
		if endIdx >= len(segments) {
			endIdx = len(segments) - 1
		}
		end := segments[endIdx].End

		timestamps = append(timestamps, entities.Timestamp{
			Time:        timefmt.FormatSeconds(start),
			Seconds:     int(start),
			Topic:       fmt.Sprintf("Section %d", len(timestamps)+1),
			Description: fmt.Sprintf("Content from %s to %s", timefmt.FormatSeconds(start), timefmt.FormatSeconds(end)),
			Keywords:    []string{"content", "section", "video"},
		})
	}
	return timestamps
}

// fallbackQuiz builds mechanical questions from summary key points. The
// correct option always restates the source point verbatim.
func fallbackQuiz(summary *entities.Summary) entities.Quiz {
	points := summary.KeyPoints
	if len(points) > fallbackQuizQuestions {
		points = points[:fallbackQuizQuestions]
	}

	questions := make([]entities.QuizQuestion, 0, len(points))
	for i, point := range points {
		questions = append(questions, entities.QuizQuestion{
			Question:      fmt.Sprintf("Which statement reflects key point %d of the video?", i+1),
			Options:       []string{point, "The video does not address this subject.", "The opposite of this point is argued in the video.", "None of the above."},
			CorrectAnswer: point,
			Explanation:   "This statement restates a key point identified in the video summary.",
			Difficulty:    "medium",
			Topic:         "General",
		})
	}

	return entities.Quiz{
		Title:          "Comprehension Check",
		Description:    "Auto-generated questions covering the key points of the video.",
		Questions:      questions,
		TotalQuestions: len(questions),
		EstimatedTime:  2 * len(questions),
	}
}

// fallbackFlashcards derives cards from summary key points when a summary
// exists, otherwise from key terms extracted out of the raw transcript.
func fallbackFlashcards(summary *entities.Summary, transcriptText string) []entities.Flashcard {
	if summary != nil && len(summary.KeyPoints) > 0 {
		points := summary.KeyPoints
		if len(points) > fallbackFlashcardLimit {
			points = points[:fallbackFlashcardLimit]
		}
		cards := make([]entities.Flashcard, 0, len(points))
		for i, point := range points {
			cards = append(cards, entities.Flashcard{
				Front: fmt.Sprintf("Key point %d of the video", i+1),
				Back:  point,
			})
		}
		return cards
	}

	terms := extractKeyTerms(transcriptText, fallbackFlashcardLimit)
	cards := make([]entities.Flashcard, 0, len(terms))
	for _, term := range terms {
		back := firstSentenceContaining(transcriptText, term)
		if back == "" {
			back = "A term mentioned in the video."
		}
		cards = append(cards, entities.Flashcard{Front: term, Back: back})
	}
	return cards
}

// fallbackNotes assembles markdown study notes out of whatever material is
// already on hand.
func fallbackNotes(summary *entities.Summary, timestamps []entities.Timestamp) string {
	var b strings.Builder
	b.WriteString("# Study Notes\n\n")

	if summary != nil {
		b.WriteString("## Overview\n\n")
		b.WriteString(summary.Overview)
		b.WriteString("\n\n")

		if len(summary.KeyPoints) > 0 {
			b.WriteString("## Key Points\n\n")
			for _, point := range summary.KeyPoints {
				b.WriteString("- ")
				b.WriteString(point)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(timestamps) > 0 {
		b.WriteString("## Topics by Time\n\n")
		for _, ts := range timestamps {
			fmt.Fprintf(&b, "- **%s** %s: %s\n", ts.Time, ts.Topic, ts.Description)
		}
	}

	return strings.TrimSpace(b.String())
}
