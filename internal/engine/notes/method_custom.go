package notes

import (
	"fmt"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Custom: a degenerate method whose pedagogical instructions are entirely
// user-supplied. The output schema and extraction path are the shared base
// ones — user text steers style, never structure.

const customSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 120,
      "title": "Section title",
      "summary": "The notes for this part of the video, following the user's instructions"
    }
  ]
}`

func customInstructions(req engine.NoteRequest) string {
	return fmt.Sprintf("Method: custom, defined by the user.\nUser instructions:\n%s", req.CustomPrompt)
}

// Two sub-checks: 35 + 35 = 70 per segment. With no method-specific fields
// to inspect, substance lands in the base ones.
func customSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.Title) >= 3 {
		score += 35
	}
	if runeLen(seg.Summary) >= 50 {
		score += 35
	}
	return score
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodCustom,
		Label:        "Custom",
		Description:  "User-supplied instructions over the shared segment schema; same extraction and scoring pipeline.",
		BandMin:      3,
		BandMax:      12,
		instructions: customInstructions,
		schema:       customSchema,
		coerce:       coerceBaseSegments,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, customSegmentScore)
		},
	})
}
