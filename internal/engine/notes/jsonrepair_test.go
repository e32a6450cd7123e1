package notes

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json block",
			raw:  "Here are your notes:\n```json\n{\"a\": 1}\n```\nEnjoy!",
			want: `{"a": 1}`,
		},
		{
			name: "fence without language tag",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare object with surrounding prose",
			raw:  `Sure! {"a": 1, "b": {"c": 2}} Hope that helps.`,
			want: `{"a": 1, "b": {"c": 2}}`,
		},
		{
			name: "truncated tail with no closing brace",
			raw:  `The notes: {"a": 1, "b": [`,
			want: `{"a": 1, "b": [`,
		},
		{
			name: "no object at all",
			raw:  "I cannot produce notes for this video.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONPayload(tt.raw); got != tt.want {
				t.Errorf("ExtractJSONPayload = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "trailing comma before closing brace",
			in:   `{"a": 1, "b": 2,}`,
		},
		{
			name: "trailing comma before closing bracket",
			in:   `{"a": [1, 2, 3,]}`,
		},
		{
			name: "missing comma between adjacent objects",
			in:   `{"segments": [{"a": 1} {"a": 2}]}`,
		},
		{
			name: "missing closing brace",
			in:   `{"a": {"b": 1}`,
		},
		{
			name: "truncated mid-string",
			in:   `{"a": 1, "b": "cut off here`,
		},
		{
			name: "truncated after dangling comma",
			in:   `{"segments": [{"a": 1},`,
		},
		{
			name: "trailing comma inside nested array",
			in:   `{"a": {"b": ["x", "y",],}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaired := RepairJSON(tt.in)
			var v any
			if err := json.Unmarshal([]byte(repaired), &v); err != nil {
				t.Errorf("repaired output still invalid: %v\nin:  %s\nout: %s", err, tt.in, repaired)
			}
		})
	}
}

func TestRepairJSONIsNoOpOnValidJSON(t *testing.T) {
	valids := []string{
		`{"a": 1}`,
		`{"title": "braces { } and , commas in strings", "n": [1, 2]}`,
		`{"nested": {"deep": [{"x": "a,b}{c"}]}}`,
		`{"s": "escaped \" quote and \\ backslash"}`,
	}

	for _, in := range valids {
		if got := RepairJSON(in); got != in {
			t.Errorf("RepairJSON changed valid JSON:\nin:  %s\nout: %s", in, got)
		}
	}
}
