package youtube

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
	"github.com/aistudybuddy/study-buddy/pkg/timefmt"
)

// NormalizeCaptions converts a raw caption payload of unknown format into an
// ordered segment sequence. Parsers are tried JSON first, then XML, then the
// SRT-like text scanner: the json3 endpoint is the primary source, and a JSON
// payload can never be mistaken for XML or vice versa, so the order only
// matters for the permissive text parser, which must come last.
func NormalizeCaptions(raw []byte) ([]entities.CaptionSegment, error) {
	segments, jsonErr := parseJSONCaptions(raw)
	if jsonErr == nil {
		return segments, nil
	}

	segments, xmlErr := parseXMLCaptions(raw)
	if xmlErr == nil {
		return segments, nil
	}

	segments, textErr := parseTextCaptions(raw)
	if textErr == nil {
		return segments, nil
	}

	return nil, errors.ErrCaptionFormatUnsupported(
		fmt.Errorf("json: %v; xml: %v; text: %v", jsonErr, xmlErr, textErr))
}

type jsonCaptionEvent struct {
	TStartMs    float64 `json:"tStartMs"`
	DDurationMs float64 `json:"dDurationMs"`
	Segs        []struct {
		UTF8 string `json:"utf8"`
	} `json:"segs"`
}

// parseJSONCaptions handles the json3 event stream: a root object with an
// events array. Events without segs are skipped; timestamps arrive in
// milliseconds.
func parseJSONCaptions(raw []byte) ([]entities.CaptionSegment, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	eventsRaw, ok := root["events"]
	if !ok {
		return nil, fmt.Errorf("missing events array")
	}

	var events []jsonCaptionEvent
	if err := json.Unmarshal(eventsRaw, &events); err != nil {
		return nil, err
	}

	segments := make([]entities.CaptionSegment, 0, len(events))
	for _, event := range events {
		if event.Segs == nil {
			continue
		}
		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		segments = append(segments, entities.CaptionSegment{
			Text:     text,
			Start:    event.TStartMs / 1000.0,
			Duration: event.DDurationMs / 1000.0,
		})
	}
	return segments, nil
}

type xmlCaptionDoc struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// parseXMLCaptions handles timed-text XML: every <text start dur> element
// becomes a segment. Missing attributes default to 0; empty elements are
// dropped.
func parseXMLCaptions(raw []byte) ([]entities.CaptionSegment, error) {
	var doc xmlCaptionDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Texts) == 0 {
		return nil, fmt.Errorf("no text elements")
	}

	segments := make([]entities.CaptionSegment, 0, len(doc.Texts))
	for _, el := range doc.Texts {
		text := strings.TrimSpace(el.Value)
		if text == "" {
			continue
		}
		segments = append(segments, entities.CaptionSegment{
			Text:     text,
			Start:    parseFloatAttr(el.Start),
			Duration: parseFloatAttr(el.Dur),
		})
	}
	return segments, nil
}

func parseFloatAttr(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// srtTrailingDuration is assigned to the final pending segment, which has no
// closing boundary to derive a duration from.
const srtTrailingDuration = 2.0

// parseTextCaptions handles SRT-like plain text. A line containing "-->"
// marks a timing boundary; text lines accumulate into the pending segment,
// which is closed by the next boundary with duration equal to the delta
// between the two boundary start times.
func parseTextCaptions(raw []byte) ([]entities.CaptionSegment, error) {
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	var segments []entities.CaptionSegment
	var pending []string
	pendingStart := 0.0
	boundarySeen := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "-->") {
			parts := strings.SplitN(line, "-->", 2)
			start := timefmt.ParseTimecode(strings.TrimSpace(parts[0]))
			if len(pending) > 0 {
				segments = append(segments, entities.CaptionSegment{
					Text:     strings.Join(pending, " "),
					Start:    pendingStart,
					Duration: start - pendingStart,
				})
				pending = nil
			}
			pendingStart = start
			boundarySeen = true
			continue
		}
		// Sequence numbers between blocks are not caption text.
		if _, err := strconv.Atoi(line); err == nil {
			continue
		}
		pending = append(pending, line)
	}

	if !boundarySeen {
		return nil, fmt.Errorf("no timing boundaries found")
	}

	if len(pending) > 0 {
		segments = append(segments, entities.CaptionSegment{
			Text:     strings.Join(pending, " "),
			Start:    pendingStart,
			Duration: srtTrailingDuration,
		})
	}
	return segments, nil
}
