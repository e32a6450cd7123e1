package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Cornell note-taking: cue questions in the margin, note lines in the body,
// a recap at the bottom of each section.

const cornellSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 150,
      "title": "The cell membrane",
      "summary": "2-3 sentence recap of this part of the video",
      "cueQuestions": ["What does selectively permeable mean?", "Why is the bilayer arranged tail-to-tail?"],
      "noteLines": ["Membrane = phospholipid bilayer", "Hydrophilic heads out, hydrophobic tails in", "Proteins act as gates and pumps"],
      "recap": "One or two sentences a student would write at the bottom of the page from memory"
    }
  ]
}`

func cornellInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: Cornell note-taking system.",
		"- cueQuestions: 2-4 margin questions that the noteLines answer; phrase them the way an exam would",
		"- noteLines: 3-7 telegraphic note lines, abbreviations welcome, one fact per line",
		"- recap: the bottom-of-page summary written as if from memory after class",
	)
}

// Three sub-checks: 24 + 23 + 23 = 70 per segment.
func cornellSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if len(seg.CueQuestions) >= 2 {
		score += 24
	}
	if len(seg.NoteLines) >= 3 {
		score += 23
	}
	if runeLen(seg.Recap) >= 40 {
		score += 23
	}
	return score
}

func coerceCornell(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.CueQuestions = strSlice(m, "cueQuestions")
		seg.NoteLines = strSlice(m, "noteLines")
		seg.Recap = strAny(m, "recap", "sectionSummary")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodCornell,
		Label:        "Cornell Notes",
		Description:  "Classic cue/notes/summary layout per video section, ready to paste into a Cornell template.",
		BandMin:      5,
		BandMax:      10,
		instructions: cornellInstructions,
		schema:       cornellSchema,
		coerce:       coerceCornell,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, cornellSegmentScore)
		},
	})
}
