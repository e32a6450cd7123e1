package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Socratic method: lead the learner through questions rather than
// statements; make the hidden assumptions explicit.

const socraticSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 120,
      "title": "Is money a store of value?",
      "summary": "2-3 sentence recap of this part of the video",
      "guidingQuestions": ["What gives paper money its value?", "What would happen if everyone stopped believing in it?", "How is that different from gold?"],
      "challengedAssumptions": ["Value is intrinsic to the object"],
      "reflectionPrompt": "Before moving on, write down what you believed about money before this segment and what changed"
    }
  ]
}`

func socraticInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: Socratic questioning.",
		"- guidingQuestions: 3-5 questions forming a chain, each building on the previous answer",
		"- never state the conclusion outright; the questions must walk the learner to it",
		"- challengedAssumptions: the unstated beliefs this segment forces the learner to examine",
		"- reflectionPrompt: one instruction asking the learner to articulate their own position",
	)
}

// Three sub-checks: 24 + 23 + 23 = 70 per segment.
func socraticSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if len(seg.GuidingQuestions) >= 3 {
		score += 24
	}
	if len(seg.ChallengedAssumptions) >= 1 {
		score += 23
	}
	if runeLen(seg.ReflectionPrompt) >= 40 {
		score += 23
	}
	return score
}

func coerceSocratic(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.GuidingQuestions = strSlice(m, "guidingQuestions")
		seg.ChallengedAssumptions = strSlice(m, "challengedAssumptions")
		seg.ReflectionPrompt = str(m, "reflectionPrompt")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodSocratic,
		Label:        "Socratic Method",
		Description:  "Question chains that walk the learner to each conclusion, with the challenged assumptions made explicit.",
		BandMin:      4,
		BandMax:      8,
		instructions: socraticInstructions,
		schema:       socraticSchema,
		coerce:       coerceSocratic,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, socraticSegmentScore)
		},
	})
}
