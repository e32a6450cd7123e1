package notes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
	"github.com/reallygood83/yt-trend-sub000/internal/engine/sources"
)

// GenerateNote is the full pipeline for one request: validate, resolve the
// video reference, acquire a transcript (unless one was supplied), build
// the method prompt, call the model, and extract a structured note.
//
// Errors before the model call are the caller's problem (bad input, no
// captions); after a model response arrives the pipeline never fails —
// unparseable output degrades instead.
func GenerateNote(ctx context.Context, req engine.NoteRequest) (*engine.Note, error) {
	engine.IncrNoteRequests()
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	videoID, err := engine.ResolveVideoID(req.VideoID)
	if err != nil {
		return nil, err
	}
	req.VideoID = videoID

	video := engine.VideoMetadata{
		VideoID:         videoID,
		Title:           req.Title,
		DurationSeconds: req.DurationSeconds,
		SourceURL:       "https://www.youtube.com/watch?v=" + videoID,
	}

	transcriptText := req.TranscriptText
	transcriptSource := "provided"
	if transcriptText == "" {
		tr, err := sources.AcquireTranscript(ctx, videoID, req.Language)
		if err != nil {
			return nil, err
		}
		transcriptText = tr.FullText
		transcriptSource = tr.MethodUsed
	}

	prompt := BuildPrompt(req, transcriptText)

	raw, err := engine.CallLLM(ctx, prompt, req.ProviderCredential)
	if err != nil {
		return nil, err
	}

	note := Extract(raw, req, video)
	note.TranscriptSource = transcriptSource
	note.Warnings = ValidateCoverage(note, req.DurationSeconds)

	slog.Info("note generated",
		slog.String("id", videoID),
		slog.String("method", string(req.Method)),
		slog.String("transcript_source", transcriptSource),
		slog.Int("segments", len(note.Segments)),
		slog.Int("branches", len(note.Branches)),
		slog.Int("quality", note.QualityScore),
		slog.Bool("degraded", note.Degraded),
		slog.Duration("took", time.Since(start)))
	return note, nil
}
