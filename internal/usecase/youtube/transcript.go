package youtube

import (
	"strings"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

// mockSegments is the fixed transcript substituted when no real captions can
// be obtained. Five 30-second spans about a generic educational topic.
var mockSegments = []entities.CaptionSegment{
	{Start: 0, Duration: 30, Text: "Welcome to this educational video about artificial intelligence and machine learning."},
	{Start: 30, Duration: 30, Text: "In this video, we will explore the fundamentals of AI and how it's transforming our world."},
	{Start: 60, Duration: 30, Text: "Machine learning is a subset of artificial intelligence that enables computers to learn without being explicitly programmed."},
	{Start: 90, Duration: 30, Text: "We'll discuss various applications including natural language processing, computer vision, and robotics."},
	{Start: 120, Duration: 30, Text: "This technology is revolutionizing industries from healthcare to transportation and beyond."},
}

// BuildTranscript assembles caption segments into a transcript document.
// When no segments are available it substitutes the canned mock transcript so
// downstream generators always receive non-trivial input; the IsMock flag
// makes the substitution visible to the caller.
func BuildTranscript(videoID, language string, segments []entities.CaptionSegment) *entities.Transcript {
	isMock := false
	if len(segments) == 0 {
		segments = mockSegments
		isMock = true
	}

	transcriptSegments := make([]entities.TranscriptSegment, 0, len(segments))
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		transcriptSegments = append(transcriptSegments, entities.TranscriptSegment{
			Start: seg.Start,
			End:   seg.Start + seg.Duration,
			Text:  seg.Text,
		})
		texts = append(texts, seg.Text)
	}

	fullText := strings.Join(texts, " ")
	return &entities.Transcript{
		VideoID:   videoID,
		Language:  language,
		Segments:  transcriptSegments,
		FullText:  fullText,
		WordCount: len(strings.Fields(fullText)),
		IsMock:    isMock,
	}
}
