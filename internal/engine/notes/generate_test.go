package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

func TestGenerateNoteRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  engine.NoteRequest
	}{
		{
			name: "missing video id",
			req:  engine.NoteRequest{Method: engine.MethodFeynman},
		},
		{
			name: "missing method",
			req:  engine.NoteRequest{VideoID: "dQw4w9WgXcQ"},
		},
		{
			name: "unknown method",
			req:  engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: "montessori"},
		},
		{
			name: "custom method without instructions",
			req:  engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: engine.MethodCustom},
		},
		{
			name: "negative duration",
			req:  engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: engine.MethodELI5, DurationSeconds: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := GenerateNote(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if note != nil {
				t.Errorf("rejected request must not produce a note, got %+v", note)
			}
		})
	}
}

func TestGenerateNoteInvalidVideoReference(t *testing.T) {
	// Passes shape validation but is not resolvable to an 11-char id; the
	// pipeline must fail before touching the network.
	req := engine.NoteRequest{VideoID: "not a youtube link", Method: engine.MethodFeynman}

	note, err := GenerateNote(context.Background(), req)
	if note != nil {
		t.Errorf("expected no note, got %+v", note)
	}
	if !errors.Is(err, engine.ErrInvalidVideoReference) {
		t.Errorf("error = %v, want ErrInvalidVideoReference", err)
	}
}
