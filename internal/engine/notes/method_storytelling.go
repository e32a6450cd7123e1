package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Storytelling: retell the video as a narrative with characters, a plot,
// a five-part dramatic arc, and an emotional timeline.

const storytellingSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 120,
      "title": "The day the reactor misbehaved",
      "summary": "2-3 sentence recap of this part of the video",
      "narrative": "A scene-by-scene retelling of this segment as a story, at least a paragraph",
      "characters": ["The night-shift engineer", "The control rods"],
      "plot": "The test begins, power dips, and the operators make a fateful choice",
      "storyArc": "rising-action",
      "emotionalJourney": "curiosity -> unease -> dread"
    }
  ]
}`

func storytellingInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: storytelling.",
		"- retell the content as one continuous story across segments; people, forces, or ideas become characters",
		"- storyArc: each segment is exactly one of exposition, rising-action, climax, falling-action, resolution; across the whole note all five parts must appear in order",
		"- emotionalJourney: the feeling timeline of the segment as 'a -> b -> c'",
		"- facts stay accurate; only the framing is narrative",
	)
}

// Five sub-checks, 14 points each, summing to 70 per segment.
func storytellingSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.Narrative) >= 100 {
		score += 14
	}
	if len(seg.Characters) >= 1 {
		score += 14
	}
	if runeLen(seg.Plot) >= 50 {
		score += 14
	}
	if validStoryArc(seg.StoryArc) {
		score += 14
	}
	if runeLen(seg.EmotionalJourney) >= 30 {
		score += 14
	}
	return score
}

func validStoryArc(arc string) bool {
	switch arc {
	case "exposition", "rising-action", "climax", "falling-action", "resolution":
		return true
	}
	return false
}

func coerceStorytelling(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.Narrative = str(m, "narrative")
		seg.Characters = strSlice(m, "characters")
		seg.Plot = str(m, "plot")
		seg.StoryArc = str(m, "storyArc")
		seg.EmotionalJourney = str(m, "emotionalJourney")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodStorytelling,
		Label:        "Storytelling",
		Description:  "The video retold as a five-part dramatic arc with characters, plot, and an emotional-intensity timeline.",
		BandMin:      5,
		BandMax:      7,
		instructions: storytellingInstructions,
		schema:       storytellingSchema,
		coerce:       coerceStorytelling,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, storytellingSegmentScore)
		},
	})
}
