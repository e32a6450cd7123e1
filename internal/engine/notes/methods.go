package notes

import (
	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// The method registry. Each explanation method is a closed
// (template, coercer, scorer) triple; the pipeline is generic over the
// registry, so adding a method means registering a new spec here and never
// touching extraction or generation code.

type methodSpec struct {
	Tag         engine.Method
	Label       string
	Description string

	// Expected segment-count band (branch count for Mind Map); hitting it
	// is worth 20 of the 100 quality points.
	BandMin, BandMax int

	// instructions renders the method's pedagogical rules for a request.
	instructions func(req engine.NoteRequest) string

	// schema is the output JSON schema with inline example values, shown
	// verbatim to the model.
	schema string

	// coerce reads the parsed top-level object into the note, defensively,
	// with explicit defaults for every field.
	coerce func(root map[string]any, note *engine.Note)

	// score returns the method-specific completeness component, 0–70,
	// averaged across segments (or computed over the branch tree).
	score func(note *engine.Note) int
}

var registry = map[engine.Method]methodSpec{}

func register(spec methodSpec) {
	registry[spec.Tag] = spec
}

func lookup(tag engine.Method) (methodSpec, bool) {
	spec, ok := registry[tag]
	return spec, ok
}

// MethodInfo is the caller-facing catalog entry.
type MethodInfo struct {
	Tag         engine.Method `json:"tag"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	MinSegments int           `json:"min_segments"`
	MaxSegments int           `json:"max_segments"`
}

// Catalog lists every registered method in fixed order.
func Catalog() []MethodInfo {
	out := make([]MethodInfo, 0, len(registry))
	for _, tag := range engine.AllMethods() {
		spec, ok := registry[tag]
		if !ok {
			continue
		}
		out = append(out, MethodInfo{
			Tag:         spec.Tag,
			Label:       spec.Label,
			Description: spec.Description,
			MinSegments: spec.BandMin,
			MaxSegments: spec.BandMax,
		})
	}
	return out
}

// averageSegmentScore applies a per-segment completeness scorer and
// averages the result, rounding half up so an all-passing single segment
// keeps its full allocation.
func averageSegmentScore(segments []engine.NoteSegment, perSegment func(engine.NoteSegment) int) int {
	if len(segments) == 0 {
		return 0
	}
	total := 0
	for _, seg := range segments {
		total += perSegment(seg)
	}
	return (total + len(segments)/2) / len(segments)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
