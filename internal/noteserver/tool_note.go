package noteserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reallygood83/yt-trend-sub000/internal/engine"
	"github.com/reallygood83/yt-trend-sub000/internal/engine/notes"
	"github.com/reallygood83/yt-trend-sub000/internal/toolutil"
)

func registerGenerateNote(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_note",
		Description: "Turn a YouTube video into structured study notes using a chosen explanation method (feynman, eli5, cornell, mindmap, socratic, analogy, storytelling, expert, custom). Fetches the transcript automatically unless transcript_text is provided. Returns timestamped segments (or a mind-map tree), a full summary, a quality score, and coverage warnings.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.NoteRequest) (*mcp.CallToolResult, engine.Note, error) {
		input.Language = toolutil.NormLang(input.Language)

		note, err := notes.GenerateNote(ctx, input)
		if err != nil {
			return nil, engine.Note{}, friendlyNoteError(err)
		}
		return nil, *note, nil
	})
}

// friendlyNoteError maps pipeline sentinels to messages that tell the
// caller what to do next instead of leaking chain internals.
func friendlyNoteError(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidVideoReference):
		return fmt.Errorf("video_id is not a recognizable YouTube URL or 11-character id: %w", err)
	case errors.Is(err, engine.ErrNoCaptionsAvailable):
		return errors.New("this video has no captions in any supported format; pass transcript_text to generate notes anyway")
	case errors.Is(err, engine.ErrUpstreamBlocked):
		return errors.New("the caption provider is rate-limiting requests right now; retry in a few minutes or pass transcript_text")
	}
	var pe *engine.ProviderError
	if errors.As(err, &pe) {
		return fmt.Errorf("LLM provider call failed: %w", pe.Err)
	}
	return err
}
