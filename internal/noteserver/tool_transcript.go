package noteserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reallygood83/yt-trend-sub000/internal/engine"
	"github.com/reallygood83/yt-trend-sub000/internal/engine/sources"
	"github.com/reallygood83/yt-trend-sub000/internal/toolutil"
)

type transcriptFetchInput struct {
	VideoID  string `json:"video_id" jsonschema:"YouTube URL or 11-char video id"`
	Language string `json:"language,omitempty" jsonschema:"Preferred caption language code (default: en)"`
}

type transcriptFetchOutput struct {
	VideoID      string                     `json:"videoId"`
	Language     string                     `json:"language"`
	Strategy     string                     `json:"strategy"`
	SegmentCount int                        `json:"segmentCount"`
	FullText     string                     `json:"fullText"`
	Segments     []engine.TranscriptSegment `json:"segments"`
}

func registerFetchTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_transcript",
		Description: "Fetch the caption transcript of a YouTube video as timestamped segments plus the joined full text. Tries multiple acquisition strategies and reports which one succeeded. Results are cached.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input transcriptFetchInput) (*mcp.CallToolResult, transcriptFetchOutput, error) {
		videoID, err := engine.ResolveVideoID(input.VideoID)
		if err != nil {
			return nil, transcriptFetchOutput{}, friendlyNoteError(err)
		}
		lang := toolutil.NormLang(input.Language)

		cacheKey := engine.CacheKey("transcript", videoID, lang)
		if out, ok := toolutil.CacheLoadJSON[transcriptFetchOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		tr, err := sources.AcquireTranscript(ctx, videoID, lang)
		if err != nil {
			return nil, transcriptFetchOutput{}, friendlyNoteError(err)
		}

		out := transcriptFetchOutput{
			VideoID:      videoID,
			Language:     tr.Language,
			Strategy:     tr.MethodUsed,
			SegmentCount: len(tr.Segments),
			FullText:     tr.FullText,
			Segments:     tr.Segments,
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
