package notes

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Structured response extraction. Extract never fails: when the payload
// cannot be parsed even after repair, the caller gets a degraded but
// well-formed note instead of an error.

const (
	degradedSummaryRunes = 500
	degradedSegmentEnd   = 60.0
)

// Extract locates, repairs, parses, and coerces raw LLM output into a
// typed Note for the given method, attaching the advisory quality score.
func Extract(raw string, req engine.NoteRequest, video engine.VideoMetadata) *engine.Note {
	spec, ok := lookup(req.Method)
	if !ok {
		spec = registry[engine.MethodCustom]
	}

	root, ok := parseWithRepair(raw)
	if !ok {
		slog.Warn("extract: unparseable LLM output, degrading",
			slog.String("method", string(req.Method)),
			slog.String("video", video.VideoID),
			slog.Int("raw_len", len(raw)))
		return degradedNote(raw, req, video)
	}

	note := newNote(req, video)
	note.FullSummary = strAny(root, "fullSummary", "summary", "overview")
	spec.coerce(root, note)

	if len(note.Segments) == 0 && len(note.Branches) == 0 {
		slog.Warn("extract: parse succeeded but produced no segments, degrading",
			slog.String("method", string(req.Method)),
			slog.String("video", video.VideoID))
		return degradedNote(raw, req, video)
	}

	note.QualityScore = qualityScore(spec, note)
	return note
}

// parseWithRepair attempts a direct parse, then one pass of the fixed
// repair sequence. Repairing already-valid JSON is a no-op, so the second
// attempt can only widen the set of accepted inputs.
func parseWithRepair(raw string) (map[string]any, bool) {
	payload := ExtractJSONPayload(raw)
	if payload == "" {
		return nil, false
	}

	var root map[string]any
	if err := json.Unmarshal([]byte(payload), &root); err == nil {
		return root, true
	}

	repaired := RepairJSON(payload)
	if err := json.Unmarshal([]byte(repaired), &root); err == nil {
		return root, true
	}
	return nil, false
}

// qualityScore is the weighted advisory score: summary substance (10),
// segment count within the method's band (20), method-specific field
// completeness averaged across segments (70). Attached to the note, never
// a gate.
func qualityScore(spec methodSpec, note *engine.Note) int {
	score := 0
	if runeLen(note.FullSummary) >= 50 {
		score += 10
	}

	count := len(note.Segments)
	if note.Method == engine.MethodMindMap {
		count = len(note.Branches)
	}
	if count >= spec.BandMin && count <= spec.BandMax {
		score += 20
	}

	score += spec.score(note)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func newNote(req engine.NoteRequest, video engine.VideoMetadata) *engine.Note {
	ageGroup := req.AgeGroup
	if ageGroup == "" {
		ageGroup = engine.AgeAdult
	}
	return &engine.Note{
		Method:      req.Method,
		AgeGroup:    ageGroup,
		Video:       video,
		GeneratedAt: time.Now().UTC(),
	}
}

// degradedNote is the unconditional fallback: one segment covering the
// first portion of the video, the truncated raw text as its summary, and
// explicit structuring-failed markers. Always at least one segment, so the
// caller's rendering path never special-cases emptiness.
func degradedNote(raw string, req engine.NoteRequest, video engine.VideoMetadata) *engine.Note {
	engine.IncrNotesDegraded()

	end := degradedSegmentEnd
	if video.DurationSeconds > 0 && video.DurationSeconds < end {
		end = video.DurationSeconds
	}

	summary := engine.TruncateRunes(engine.CollapseWhitespace(raw), degradedSummaryRunes, "…")
	if summary == "" {
		summary = "The model returned no usable content."
	}

	note := newNote(req, video)
	note.Degraded = true
	note.FullSummary = "[structuring failed] " + summary
	note.Segments = []engine.NoteSegment{{
		Start:   0,
		End:     end,
		Title:   "Structuring failed",
		Summary: summary,
	}}
	note.QualityScore = 0
	return note
}
