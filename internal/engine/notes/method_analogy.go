package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Analogy method: one load-bearing analogy per segment, mapped part by
// part, with an honest note on where it stops working.

const analogySchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 120,
      "title": "How HTTP caching works",
      "summary": "2-3 sentence recap of this part of the video",
      "mainAnalogy": "A browser cache is a pantry: you only go to the store when the pantry is empty or the food has expired",
      "analogyMapping": ["pantry = local cache", "expiry date = max-age header", "going to the store = network request"],
      "whereItBreaks": "Pantries don't revalidate — there is no ETag equivalent for milk"
    }
  ]
}`

func analogyInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: analogy-driven explanation.",
		"- mainAnalogy: ONE central analogy per segment, drawn from everyday life, carried through the whole explanation",
		"- analogyMapping: 2-4 explicit 'X = Y' pairs mapping analogy parts to real concepts",
		"- whereItBreaks: state honestly where the analogy stops matching reality",
	)
}

// Three sub-checks: 24 + 23 + 23 = 70 per segment.
func analogySegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.MainAnalogy) >= 40 {
		score += 24
	}
	if len(seg.AnalogyMapping) >= 2 {
		score += 23
	}
	if runeLen(seg.WhereItBreaks) >= 20 {
		score += 23
	}
	return score
}

func coerceAnalogy(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.MainAnalogy = str(m, "mainAnalogy")
		seg.AnalogyMapping = strSlice(m, "analogyMapping")
		seg.WhereItBreaks = str(m, "whereItBreaks")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodAnalogy,
		Label:        "Analogy",
		Description:  "One everyday analogy per segment with explicit part-to-part mapping and its breaking point.",
		BandMin:      4,
		BandMax:      8,
		instructions: analogyInstructions,
		schema:       analogySchema,
		coerce:       coerceAnalogy,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, analogySegmentScore)
		},
	})
}
