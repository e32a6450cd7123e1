package notes

import (
	"fmt"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Expert Analysis: treat the viewer as a practitioner in a named domain and
// analyze the content at professional depth.

const expertSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "segments": [
    {
      "start": 0,
      "end": 180,
      "title": "Index selection strategy",
      "summary": "2-3 sentence recap of this part of the video",
      "domainContext": "Where this sits in the wider discipline and what prior knowledge it assumes",
      "technicalAnalysis": "Professional-depth analysis of the claims, methods, and trade-offs, at least a paragraph",
      "keyTerms": ["covering index", "cardinality", "selectivity"],
      "practicalImplications": "What a practitioner should actually do differently after this segment"
    }
  ]
}`

func expertInstructions(req engine.NoteRequest) string {
	domain := req.Domain
	if domain == "" {
		domain = "the video's own field"
	}
	return joinLines(
		fmt.Sprintf("Method: expert analysis for practitioners of %s.", domain),
		"- write for a professional audience; keep and define precise terminology",
		"- technicalAnalysis: evaluate the claims critically, note trade-offs, limitations, and what the video glosses over",
		"- keyTerms: 3-6 terms of art a practitioner must know from this segment",
		"- practicalImplications: concrete actions or decisions this changes",
	)
}

// Four sub-checks: 18 + 18 + 17 + 17 = 70 per segment.
func expertSegmentScore(seg engine.NoteSegment) int {
	score := 0
	if runeLen(seg.DomainContext) >= 30 {
		score += 18
	}
	if runeLen(seg.TechnicalAnalysis) >= 100 {
		score += 18
	}
	if len(seg.KeyTerms) >= 3 {
		score += 17
	}
	if runeLen(seg.PracticalImplications) >= 40 {
		score += 17
	}
	return score
}

func coerceExpert(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		seg := baseSegment(m)
		seg.DomainContext = str(m, "domainContext")
		seg.TechnicalAnalysis = str(m, "technicalAnalysis")
		seg.KeyTerms = strSlice(m, "keyTerms")
		seg.PracticalImplications = str(m, "practicalImplications")
		note.Segments = append(note.Segments, seg)
	}
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodExpert,
		Label:        "Expert Analysis",
		Description:  "Professional-depth analysis per segment: domain context, critical technical evaluation, terms of art, practical implications.",
		BandMin:      5,
		BandMax:      10,
		instructions: expertInstructions,
		schema:       expertSchema,
		coerce:       coerceExpert,
		score: func(note *engine.Note) int {
			return averageSegmentScore(note.Segments, expertSegmentScore)
		},
	})
}
