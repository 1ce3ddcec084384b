package entities

// CaptionSegment is one timed span of caption text as emitted by the source.
type CaptionSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptSegment augments a caption segment with its computed end time.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the assembled document for one video. It is built once per
// request and never mutated afterwards.
type Transcript struct {
	VideoID   string              `json:"video_id"`
	Language  string              `json:"language"`
	Segments  []TranscriptSegment `json:"segments"`
	FullText  string              `json:"full_text"`
	WordCount int                 `json:"word_count"`
	// IsMock reports that the canned transcript was substituted because no
	// real captions could be obtained.
	IsMock bool `json:"is_mock"`
}

// Duration estimates the video length from the last segment's end time.
func (t *Transcript) Duration() int {
	if len(t.Segments) == 0 {
		return 0
	}
	return int(t.Segments[len(t.Segments)-1].End)
}
