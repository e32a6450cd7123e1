package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Feynman technique: explain each segment as if teaching it from scratch,
// surface the gaps, then test yourself.

const feynmanSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 120,
      "title": "What a neural network actually is",
      "summary": "2-3 sentence recap of this part of the video",
      "coreConcept": "A neural network is layers of weighted sums with nonlinearities",
      "simpleExplanation": "Explain the concept in plain words, as if to someone who has never heard of it, at least a full paragraph",
      "everydayAnalogy": "Like a kitchen brigade where each cook adjusts the dish a little before passing it on",
      "knowledgeGaps": ["Why do deeper layers learn more abstract features?", "What happens without the nonlinearity?"],
      "selfExplanationTest": "Cover the notes and explain backpropagation out loud in under a minute"
    }
  ]
}`

func feynmanInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: Feynman technique.",
		"- For each segment, state the single core concept being taught",
		"- simpleExplanation: re-teach the concept from first principles in plain language, no circular definitions",
		"- everydayAnalogy: one concrete analogy from daily life, not from the video's own domain",
		"- knowledgeGaps: 2-3 questions a learner would still have after this segment",
		"- selfExplanationTest: one concrete self-test instruction the learner can do without the video",
	)
}

// Five sub-checks, 14 points each, summing to 70 per segment.
func feynmanSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.CoreConcept) >= 20 {
		score += 14
	}
	if runeLen(seg.SimpleExplanation) >= 100 {
		score += 14
	}
	if runeLen(seg.EverydayAnalogy) >= 50 {
		score += 14
	}
	if len(seg.KnowledgeGaps) >= 2 {
		score += 14
	}
	if runeLen(seg.SelfExplanationTest) >= 50 {
		score += 14
	}
	return score
}

func coerceFeynman(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.CoreConcept = str(m, "coreConcept")
		seg.SimpleExplanation = strAny(m, "simpleExplanation", "explanation")
		seg.EverydayAnalogy = str(m, "everydayAnalogy")
		seg.KnowledgeGaps = strSlice(m, "knowledgeGaps")
		seg.SelfExplanationTest = str(m, "selfExplanationTest")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodFeynman,
		Label:        "Feynman Technique",
		Description:  "Re-teach each concept from first principles with an everyday analogy, open questions, and a self-test.",
		BandMin:      6,
		BandMax:      10,
		instructions: feynmanInstructions,
		schema:       feynmanSchema,
		coerce:       coerceFeynman,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, feynmanSegmentScore)
		},
	})
}
