package study

import (
	"strings"
	"testing"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

func testTranscript(segments int) *entities.Transcript {
	segs := make([]entities.TranscriptSegment, 0, segments)
	words := make([]string, 0, segments)
	for i := 0; i < segments; i++ {
		start := float64(i * 10)
		text := "segment"
		segs = append(segs, entities.TranscriptSegment{Start: start, End: start + 10, Text: text})
		words = append(words, text)
	}
	full := strings.Join(words, " ")
	return &entities.Transcript{
		VideoID:   "vid1",
		Language:  "en",
		Segments:  segs,
		FullText:  full,
		WordCount: len(words),
	}
}

func TestFallbackSummary(t *testing.T) {
	tr := testTranscript(3)
	summary := fallbackSummary(tr)

	if summary.Overview != fallbackOverview {
		t.Error("overview is not the fixed fallback text")
	}
	if summary.DifficultyLevel != entities.DifficultyIntermediate {
		t.Errorf("difficulty = %q, want intermediate", summary.DifficultyLevel)
	}
	if summary.EstimatedReadingTime != 1 {
		t.Errorf("reading time = %d, want floor of 1", summary.EstimatedReadingTime)
	}
	if len(summary.KeyPoints) == 0 {
		t.Error("fallback summary has no key points")
	}
}

func TestFallbackTimestamps(t *testing.T) {
	t.Run("splits into five sections", func(t *testing.T) {
		got := fallbackTimestamps(testTranscript(10))
		if len(got) != 5 {
			t.Fatalf("got %d sections, want 5", len(got))
		}
		if got[0].Topic != "Section 1" || got[4].Topic != "Section 5" {
			t.Errorf("section topics = %q ... %q", got[0].Topic, got[4].Topic)
		}
		if got[1].Seconds != 20 {
			t.Errorf("section 2 starts at %d, want 20", got[1].Seconds)
		}
		for _, ts := range got {
			if !strings.HasPrefix(ts.Description, "Content from ") {
				t.Errorf("description = %q", ts.Description)
			}
		}
	})

	t.Run("twelve segments chunk by floor division", func(t *testing.T) {
		got := fallbackTimestamps(testTranscript(12))
		if len(got) < 5 {
			t.Fatalf("got %d sections, want at least 5", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Seconds < got[i-1].Seconds {
				t.Fatalf("section starts not non-decreasing: %v", got)
			}
		}
	})

	t.Run("short transcript gets one section per segment", func(t *testing.T) {
		got := fallbackTimestamps(testTranscript(3))
		if len(got) != 3 {
			t.Fatalf("got %d sections, want 3", len(got))
		}
	})

	t.Run("empty transcript yields no sections", func(t *testing.T) {
		got := fallbackTimestamps(&entities.Transcript{})
		if len(got) != 0 {
			t.Fatalf("got %d sections, want 0", len(got))
		}
	})
}

func TestFallbackQuiz(t *testing.T) {
	summary := &entities.Summary{
		KeyPoints: []string{"point one", "point two", "point three", "point four", "point five", "point six"},
	}
	quiz := fallbackQuiz(summary)

	if quiz.TotalQuestions != 5 {
		t.Fatalf("got %d questions, want cap of 5", quiz.TotalQuestions)
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
		// The correct option restates the source point verbatim.
		if q.CorrectAnswer != summary.KeyPoints[i] {
			t.Errorf("question %d correct answer = %q, want %q", i, q.CorrectAnswer, summary.KeyPoints[i])
		}
		if !containsTrimmed(q.Options, q.CorrectAnswer) {
			t.Errorf("question %d correct answer missing from options", i)
		}
	}
}

func TestFallbackFlashcards(t *testing.T) {
	t.Run("from summary key points", func(t *testing.T) {
		summary := &entities.Summary{KeyPoints: []string{"alpha", "beta"}}
		cards := fallbackFlashcards(summary, "ignored")
		if len(cards) != 2 {
			t.Fatalf("got %d cards, want 2", len(cards))
		}
		if cards[0].Back != "alpha" || cards[1].Back != "beta" {
			t.Errorf("card backs = %q, %q", cards[0].Back, cards[1].Back)
		}
	})

	t.Run("from raw text when no summary", func(t *testing.T) {
		text := "An introduction to Graph Theory. Graph Theory studies vertices and edges."
		cards := fallbackFlashcards(nil, text)
		if len(cards) == 0 {
			t.Fatal("no cards derived from raw text")
		}
		if cards[0].Front != "Graph Theory" {
			t.Errorf("top card front = %q", cards[0].Front)
		}
		if !strings.Contains(cards[0].Back, "Graph Theory") {
			t.Errorf("card back %q does not define its term", cards[0].Back)
		}
	})
}

func TestFallbackNotes(t *testing.T) {
	summary := &entities.Summary{
		Overview:  "An overview.",
		KeyPoints: []string{"first", "second"},
	}
	timestamps := []entities.Timestamp{
		{Time: "00:00", Topic: "Intro", Description: "Opening remarks"},
	}

	notes := fallbackNotes(summary, timestamps)

	for _, want := range []string{"# Study Notes", "## Overview", "An overview.", "- first", "## Topics by Time", "**00:00** Intro"} {
		if !strings.Contains(notes, want) {
			t.Errorf("notes missing %q", want)
		}
	}
}
