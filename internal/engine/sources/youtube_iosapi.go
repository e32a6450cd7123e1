package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Strategy 2: iOS-client Innertube wrapper.
//
// Requests captions while presenting as the official iOS app, which routes
// around blocks keyed to the web UI. Caption content comes back as
// structured json3 events instead of XML. Tries the preferred language,
// then English.

type iosAPIStrategy struct{}

func (iosAPIStrategy) Name() string { return "ios-api" }

func (s iosAPIStrategy) Attempt(ctx context.Context, videoID, lang string) ([]engine.TranscriptSegment, error) {
	engine.IncrIOSAPIAttempts()

	playerResp, err := callPlayer(ctx, videoID, innertubeClient{
		ClientName:    "IOS",
		ClientVersion: ytIOSVersion,
		DeviceModel:   "iPhone16,2",
		Hl:            "en",
		Gl:            "US",
	}, ytIOSUA, "5")
	if err != nil {
		return nil, err
	}

	tracks, err := captionTracksOf(playerResp)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}

	langs := []string{lang, "en"}
	if lang == "" || lang == "en" {
		langs = []string{"en"}
	}
	for _, l := range langs {
		track, ok := pickTrack(tracks, l)
		if !ok {
			continue
		}
		segs, err := fetchTimedTextJSON3(ctx, track.BaseURL)
		if err != nil {
			return nil, err
		}
		if len(segs) > 0 {
			return segs, nil
		}
	}
	return nil, nil
}

// json3 caption payload: events carry start/duration in milliseconds and
// text split across segs runs.
type json3Resp struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs int64      `json:"tStartMs"`
	DurMs   int64      `json:"dDurationMs"`
	Segs    []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// fetchTimedTextJSON3 fetches a caption track in json3 format and
// normalizes events into transcript segments (seconds).
func fetchTimedTextJSON3(ctx context.Context, baseURL string) ([]engine.TranscriptSegment, error) {
	sep := "&"
	if !strings.Contains(baseURL, "?") {
		sep = "?"
	}
	body, err := fetchTimedTextRaw(ctx, baseURL+sep+"fmt=json3")
	if err != nil {
		return nil, err
	}

	var resp json3Resp
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse json3 captions: %w", err)
	}

	segs := make([]engine.TranscriptSegment, 0, len(resp.Events))
	for _, ev := range resp.Events {
		var sb strings.Builder
		for _, s := range ev.Segs {
			sb.WriteString(s.UTF8)
		}
		text := engine.CollapseWhitespace(engine.CleanHTML(sb.String()))
		if text == "" {
			continue
		}
		segs = append(segs, engine.TranscriptSegment{
			Text:            text,
			StartSeconds:    float64(ev.StartMs) / 1000.0,
			DurationSeconds: float64(ev.DurMs) / 1000.0,
		})
	}
	return segs, nil
}
