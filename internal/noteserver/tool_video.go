package noteserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reallygood83/yt-trend-sub000/internal/engine"
	"github.com/reallygood83/yt-trend-sub000/internal/toolutil"
)

type resolveVideoInput struct {
	Reference string `json:"reference" jsonschema:"YouTube URL (watch, youtu.be, embed, shorts, live) or bare 11-char id"`
}

type resolveVideoOutput struct {
	VideoID      string `json:"videoId"`
	WatchURL     string `json:"watchUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func registerResolveVideo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_video",
		Description: "Resolve any YouTube video reference (watch/short/embed/shorts/live URL or bare id) to its canonical 11-character video id, watch URL, and default thumbnail URL. Pure string parsing, no network calls.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input resolveVideoInput) (*mcp.CallToolResult, resolveVideoOutput, error) {
		videoID, err := engine.ResolveVideoID(input.Reference)
		if err != nil {
			return nil, resolveVideoOutput{}, friendlyNoteError(err)
		}
		return nil, resolveVideoOutput{
			VideoID:      videoID,
			WatchURL:     "https://www.youtube.com/watch?v=" + videoID,
			ThumbnailURL: fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID),
		}, nil
	})
}

type videoThumbnailInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube URL or 11-char video id"`
}

type videoThumbnailOutput struct {
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
	Quality string `json:"quality"`
}

// thumbnailQualities in probe order, best first. maxresdefault only exists
// for videos uploaded in HD; hqdefault exists for effectively every video.
var thumbnailQualities = []string{"maxresdefault", "sddefault", "hqdefault", "mqdefault", "default"}

func registerVideoThumbnail(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_thumbnail",
		Description: "Find the best available thumbnail for a YouTube video by probing quality tiers from maxresdefault down to default. Returns the first URL that actually exists. Results are cached.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input videoThumbnailInput) (*mcp.CallToolResult, videoThumbnailOutput, error) {
		engine.IncrThumbnailRequests()

		videoID, err := engine.ResolveVideoID(input.VideoID)
		if err != nil {
			return nil, videoThumbnailOutput{}, friendlyNoteError(err)
		}

		cacheKey := engine.CacheKey("thumbnail", videoID)
		if out, ok := toolutil.CacheLoadJSON[videoThumbnailOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		for _, quality := range thumbnailQualities {
			url := fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", videoID, quality)
			if thumbnailExists(ctx, url) {
				out := videoThumbnailOutput{VideoID: videoID, URL: url, Quality: quality}
				toolutil.CacheStoreJSON(ctx, cacheKey, out)
				return nil, out, nil
			}
		}
		return nil, videoThumbnailOutput{}, fmt.Errorf("no thumbnail found for video %s", videoID)
	})
}

func thumbnailExists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	client := engine.Cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
