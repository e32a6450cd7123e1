package notes

import (
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// ELI5: explain like I'm five. Hard cap on sentence length, analogies must
// point at objects a child has held.

const eli5Schema = `{
  "fullSummary": "3-4 short sentences about the whole video, max 10 words each",
  "segments": [
    {
      "start": 0,
      "end": 90,
      "title": "Tiny switches that think",
      "summary": "Short sentences only. Max 10 words per sentence.",
      "childFriendlyAnalogy": "A computer brain is like a big box of light switches",
      "visualDescription": "Picture a wall of tiny lights blinking on and off",
      "maxWordsPerSentence": 10
    }
  ]
}`

func eli5Instructions(engine.NoteRequest) string {
	return joinLines(
		"Method: ELI5 (explain like I'm five).",
		"- EVERY sentence in every field must be 10 words or fewer",
		"- childFriendlyAnalogy: compare to a concrete object a child knows (toys, food, playground), never an abstract idea",
		"- visualDescription: one picture the child can imagine while listening",
		"- set maxWordsPerSentence to the longest sentence you actually wrote",
		"- no jargon; if the video uses a big word, replace it with a small one",
	)
}

// Four sub-checks: 18 + 18 + 17 + 17 = 70 per segment.
func eli5SegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.ChildFriendlyAnalogy) >= 30 {
		score += 18
	}
	if runeLen(seg.VisualDescription) >= 30 {
		score += 18
	}
	if seg.MaxWordsPerSentence > 0 && seg.MaxWordsPerSentence <= 10 {
		score += 17
	}
	if sentencesWithinCap(seg.Summary, 10) {
		score += 17
	}
	return score
}

// sentencesWithinCap reports whether every sentence stays at or under the
// word cap. Empty text fails — a missing summary is not a compliant one.
func sentencesWithinCap(text string, maxWords int) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, sentence := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if len(strings.Fields(sentence)) > maxWords {
			return false
		}
	}
	return true
}

func coerceELI5(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.ChildFriendlyAnalogy = str(m, "childFriendlyAnalogy")
		seg.VisualDescription = str(m, "visualDescription")
		seg.MaxWordsPerSentence = intVal(m, "maxWordsPerSentence")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodELI5,
		Label:        "ELI5",
		Description:  "Short sentences, concrete-object analogies, and a visual to imagine — notes a young child could follow.",
		BandMin:      4,
		BandMax:      8,
		instructions: eli5Instructions,
		schema:       eli5Schema,
		coerce:       coerceELI5,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, eli5SegmentScore)
		},
	})
}
