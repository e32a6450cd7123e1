package notes

import (
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Defensive readers over untyped LLM JSON. All "trust nothing from the
// network" logic lives here: every accessor tolerates absent keys and wrong
// types and falls back to an explicit default, so a partially-populated
// response never produces a partially-typed note.

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// strAny returns the first non-empty string among aliases. Models drift
// between camelCase variants of the same field.
func strAny(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := str(m, k); s != "" {
			return s
		}
	}
	return ""
}

func num(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func intVal(m map[string]any, key string) int {
	return int(num(m, key))
}

func strSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func mapSlice(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// baseSegment coerces the fields shared by every method's segment schema.
func baseSegment(m map[string]any) engine.NoteSegment {
	return engine.NoteSegment{
		Start:   num(m, "start"),
		End:     num(m, "end"),
		Title:   str(m, "title"),
		Summary: str(m, "summary"),
	}
}

// coerceBaseSegments is the coercer for methods without extra per-segment
// fields (Custom).
func coerceBaseSegments(root map[string]any, note *engine.Note) {
	for _, m := range mapSlice(root, "segments") {
		note.Segments = append(note.Segments, baseSegment(m))
	}
}
