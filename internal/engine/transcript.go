package engine

import "strings"

// TranscriptSegment is one caption line, normalized to seconds regardless
// of which acquisition strategy produced it.
type TranscriptSegment struct {
	Text            string  `json:"text"`
	StartSeconds    float64 `json:"start"`
	DurationSeconds float64 `json:"duration"`
}

// Transcript is an ordered caption track for one video.
type Transcript struct {
	Segments   []TranscriptSegment `json:"segments"`
	FullText   string              `json:"full_text"`
	MethodUsed string              `json:"method_used"` // acquisition strategy tag
	Language   string              `json:"language,omitempty"`
}

// NewTranscript builds a Transcript from raw segments, deriving FullText as
// the space-joined concatenation of non-empty segment texts in start order.
// Segments are assumed already ordered by the producing strategy.
func NewTranscript(segments []TranscriptSegment, method, language string) *Transcript {
	var sb strings.Builder
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return &Transcript{
		Segments:   segments,
		FullText:   sb.String(),
		MethodUsed: method,
		Language:   language,
	}
}

// Empty reports whether the transcript carries no usable text.
func (t *Transcript) Empty() bool {
	return t == nil || len(t.Segments) == 0 || t.FullText == ""
}
