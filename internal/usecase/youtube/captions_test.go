package youtube

import (
	"math"
	"testing"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">Hello world</text>
  <text start="2.5" dur="3">Second segment</text>
  <text start="5.5" dur="2">Third segment</text>
</transcript>`

const sampleJSON = `{"events":[
  {"tStartMs":0,"dDurationMs":2500,"segs":[{"utf8":"Hello "},{"utf8":"world"}]},
  {"tStartMs":2500,"dDurationMs":3000,"segs":[{"utf8":"Second segment"}]},
  {"tStartMs":5500,"dDurationMs":2000,"segs":[{"utf8":"Third segment"}]}
]}`

const sampleSRT = `1
00:00:00,000 --> 00:00:02,500
Hello world

2
00:00:02,500 --> 00:00:05,500
Second segment

3
00:00:05,500 --> 00:00:07,500
Third segment`

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertSegments(t *testing.T, got, want []entities.CaptionSegment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Text != want[i].Text {
			t.Errorf("segment %d text = %q, want %q", i, got[i].Text, want[i].Text)
		}
		if !approxEqual(got[i].Start, want[i].Start) {
			t.Errorf("segment %d start = %v, want %v", i, got[i].Start, want[i].Start)
		}
		if !approxEqual(got[i].Duration, want[i].Duration) {
			t.Errorf("segment %d duration = %v, want %v", i, got[i].Duration, want[i].Duration)
		}
	}
}

// All three source encodings of the same captions must normalize to the same
// segment sequence.
func TestNormalizeCaptions_FormatEquivalence(t *testing.T) {
	want := []entities.CaptionSegment{
		{Text: "Hello world", Start: 0, Duration: 2.5},
		{Text: "Second segment", Start: 2.5, Duration: 3},
		{Text: "Third segment", Start: 5.5, Duration: 2},
	}

	for _, tt := range []struct {
		name string
		raw  string
	}{
		{name: "xml", raw: sampleXML},
		{name: "json", raw: sampleJSON},
		{name: "srt", raw: sampleSRT},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCaptions([]byte(tt.raw))
			if err != nil {
				t.Fatalf("NormalizeCaptions failed: %v", err)
			}
			assertSegments(t, got, want)
		})
	}
}

func TestNormalizeCaptions_Unsupported(t *testing.T) {
	if _, err := NormalizeCaptions([]byte("just some words with no structure")); err == nil {
		t.Fatal("expected error for unstructured payload")
	}
}

func TestParseXMLCaptions(t *testing.T) {
	t.Run("empty element dropped", func(t *testing.T) {
		raw := `<transcript><text start="0" dur="1">  </text><text start="1" dur="2">kept</text></transcript>`
		got, err := parseXMLCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseXMLCaptions failed: %v", err)
		}
		assertSegments(t, got, []entities.CaptionSegment{{Text: "kept", Start: 1, Duration: 2}})
	})

	t.Run("missing attributes default to zero", func(t *testing.T) {
		raw := `<transcript><text>no timing</text></transcript>`
		got, err := parseXMLCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseXMLCaptions failed: %v", err)
		}
		assertSegments(t, got, []entities.CaptionSegment{{Text: "no timing", Start: 0, Duration: 0}})
	})

	t.Run("rejects non-xml", func(t *testing.T) {
		if _, err := parseXMLCaptions([]byte(`{"events":[]}`)); err == nil {
			t.Fatal("expected error for JSON input")
		}
	})
}

func TestParseJSONCaptions(t *testing.T) {
	t.Run("event without segs skipped", func(t *testing.T) {
		raw := `{"events":[
			{"tStartMs":0,"dDurationMs":1000},
			{"tStartMs":1000,"dDurationMs":2000,"segs":[{"utf8":"kept"}]}
		]}`
		got, err := parseJSONCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseJSONCaptions failed: %v", err)
		}
		assertSegments(t, got, []entities.CaptionSegment{{Text: "kept", Start: 1, Duration: 2}})
	})

	t.Run("empty text dropped", func(t *testing.T) {
		raw := `{"events":[{"tStartMs":0,"dDurationMs":1000,"segs":[{"utf8":"  \n"}]}]}`
		got, err := parseJSONCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseJSONCaptions failed: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no segments, got %+v", got)
		}
	})

	t.Run("missing events rejected", func(t *testing.T) {
		if _, err := parseJSONCaptions([]byte(`{"other":true}`)); err == nil {
			t.Fatal("expected error for object without events")
		}
	})

	t.Run("rejects non-json", func(t *testing.T) {
		if _, err := parseJSONCaptions([]byte(sampleXML)); err == nil {
			t.Fatal("expected error for XML input")
		}
	})
}

func TestParseTextCaptions(t *testing.T) {
	t.Run("trailing segment gets default duration", func(t *testing.T) {
		raw := "00:00:10,000 --> 00:00:12,000\nonly block, never closed"
		got, err := parseTextCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseTextCaptions failed: %v", err)
		}
		assertSegments(t, got, []entities.CaptionSegment{
			{Text: "only block, never closed", Start: 10, Duration: srtTrailingDuration},
		})
	})

	t.Run("multi-line text joined", func(t *testing.T) {
		raw := "00:00:00,000 --> 00:00:03,000\nfirst line\nsecond line\n\n00:00:03,000 --> 00:00:05,000\nnext"
		got, err := parseTextCaptions([]byte(raw))
		if err != nil {
			t.Fatalf("parseTextCaptions failed: %v", err)
		}
		if got[0].Text != "first line second line" {
			t.Errorf("joined text = %q", got[0].Text)
		}
		if !approxEqual(got[0].Duration, 3) {
			t.Errorf("duration = %v, want 3", got[0].Duration)
		}
	})

	t.Run("no boundaries rejected", func(t *testing.T) {
		if _, err := parseTextCaptions([]byte("plain prose without any timing")); err == nil {
			t.Fatal("expected error when no boundary line exists")
		}
	})
}
