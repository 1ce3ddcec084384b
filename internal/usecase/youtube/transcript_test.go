package youtube

import (
	"strings"
	"testing"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

func TestBuildTranscript(t *testing.T) {
	segments := []entities.CaptionSegment{
		{Text: "one two", Start: 0, Duration: 2},
		{Text: "three", Start: 2, Duration: 3},
	}

	tr := BuildTranscript("vid1", "en", segments)

	if tr.IsMock {
		t.Fatal("transcript should not be mock")
	}
	if tr.FullText != "one two three" {
		t.Errorf("FullText = %q", tr.FullText)
	}
	if tr.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", tr.WordCount)
	}
	if tr.Segments[0].End != 2 || tr.Segments[1].End != 5 {
		t.Errorf("segment ends = %v, %v", tr.Segments[0].End, tr.Segments[1].End)
	}
	if tr.Duration() != 5 {
		t.Errorf("Duration() = %d, want 5", tr.Duration())
	}
}

// wordCount must always equal the whitespace-token count of fullText.
func TestBuildTranscript_WordCountInvariant(t *testing.T) {
	segments := []entities.CaptionSegment{
		{Text: "a  b", Start: 0, Duration: 1},
		{Text: "c", Start: 1, Duration: 1},
	}
	tr := BuildTranscript("vid1", "en", segments)
	if got := len(strings.Fields(tr.FullText)); got != tr.WordCount {
		t.Errorf("WordCount = %d, field count = %d", tr.WordCount, got)
	}
}

func TestBuildTranscript_MockSubstitution(t *testing.T) {
	tr := BuildTranscript("vid1", "en", nil)

	if !tr.IsMock {
		t.Fatal("expected mock transcript")
	}
	if len(tr.Segments) != 5 {
		t.Fatalf("mock transcript has %d segments, want 5", len(tr.Segments))
	}
	for i, seg := range tr.Segments {
		if seg.End-seg.Start != 30 {
			t.Errorf("mock segment %d spans %v seconds, want 30", i, seg.End-seg.Start)
		}
	}
	if got := len(strings.Fields(tr.FullText)); got != tr.WordCount {
		t.Errorf("mock WordCount = %d, field count = %d", tr.WordCount, got)
	}
	// Same input, same transcript: the substitution is deterministic.
	again := BuildTranscript("vid1", "en", nil)
	if again.FullText != tr.FullText || again.WordCount != tr.WordCount {
		t.Error("mock transcript is not deterministic")
	}
}
