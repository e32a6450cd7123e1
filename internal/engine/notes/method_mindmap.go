package notes

import "github.com/reallygood83/yt-trend-sub000/internal/engine"

// Mind Map replaces the time-segment model entirely: the output is a tree
// of branches around a central topic, with no timing information.

const mindMapSchema = `{
  "fullSummary": "3-5 sentence overview of the whole video",
  "centralTopic": "Photosynthesis",
  "branches": [
    {
      "topic": "Light reactions",
      "details": ["Happen in thylakoid membrane", "Split water, release O2"],
      "children": [
        {
          "topic": "Photosystems",
          "details": ["PSII feeds PSI", "Chlorophyll absorbs red/blue"],
          "children": []
        }
      ]
    }
  ]
}`

func mindMapInstructions(engine.NoteRequest) string {
	return joinLines(
		"Method: Mind Map.",
		"- centralTopic: the one phrase the whole video orbits around",
		"- 3-8 top-level branches, each a major theme; nest children up to 2 levels below a branch",
		"- details: 1-4 short facts per node, telegraphic style",
		"- no timing fields; organize by concept, not chronology",
	)
}

func coerceBranch(m map[string]any) engine.MindMapBranch {
	branch := engine.MindMapBranch{
		Topic:   strAny(m, "topic", "title"),
		Details: strSlice(m, "details"),
	}
	for _, child := range mapSlice(m, "children") {
		branch.Children = append(branch.Children, coerceBranch(child))
	}
	return branch
}

func coerceMindMap(root map[string]any, note *engine.Note) {
	note.CentralTopic = strAny(root, "centralTopic", "central_topic")
	for _, m := range mapSlice(root, "branches") {
		note.Branches = append(note.Branches, coerceBranch(m))
	}
}

// mindMapScore scores the tree instead of segments: 20 for a central
// topic, then up to 50 averaged across top-level branches (topic present,
// substance in details or children — 25 each).
func mindMapScore(note *engine.Note) int {
	score := 0
	if runeLen(note.CentralTopic) >= 3 {
		score += 20
	}
	if len(note.Branches) == 0 {
		return score
	}
	total := 0
	for _, b := range note.Branches {
		branchScore := 0
		if b.Topic != "" {
			branchScore += 25
		}
		if len(b.Details) > 0 || len(b.Children) > 0 {
			branchScore += 25
		}
		total += branchScore
	}
	return score + (total+len(note.Branches)/2)/len(note.Branches)
}

func init() {
	register(methodSpec{
		Tag:          engine.MethodMindMap,
		Label:        "Mind Map",
		Description:  "A concept tree around a central topic instead of time segments; branches nest up to two levels.",
		BandMin:      3,
		BandMax:      8,
		instructions: mindMapInstructions,
		schema:       mindMapSchema,
		coerce:       coerceMindMap,
		score:        mindMapScore,
	})
}
