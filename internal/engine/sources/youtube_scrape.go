package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Strategy 1: lightweight watch-page scrape.
//
// Fetches the watch page with a browser TLS fingerprint and extracts the
// caption track list from the embedded ytInitialPlayerResponse JSON. Works
// from most IPs because it looks like a regular page view. Tries the
// preferred language, then English, then the platform default.

// ytInitialPlayerResponseMarker marks the start of the player response JSON
// in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

type scrapeStrategy struct{}

func (scrapeStrategy) Name() string { return "scrape" }

func (s scrapeStrategy) Attempt(ctx context.Context, videoID, lang string) ([]engine.TranscriptSegment, error) {
	engine.IncrScrapeAttempts()
	if engine.Cfg.BrowserClient == nil {
		return nil, errors.New("browser client not configured")
	}

	tracks, err := s.fetchTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}

	return collectTrackSegments(ctx, tracks, lang, fetchTimedTextSRV1)
}

// collectTrackSegments walks the language fallback order (preferred →
// English → no constraint). A fetch failure for one language advances to
// the next, same as an empty track; only exhaustion surfaces the last
// error, so the chain can still classify a block.
func collectTrackSegments(ctx context.Context, tracks []captionTrack, lang string, fetch func(context.Context, string) ([]engine.TranscriptSegment, error)) ([]engine.TranscriptSegment, error) {
	var lastErr error
	for _, l := range languageFallbacks(lang) {
		track, ok := pickTrack(tracks, l)
		if !ok {
			continue
		}
		segs, err := fetch(ctx, track.BaseURL)
		if err != nil {
			lastErr = err
			continue
		}
		if len(segs) > 0 {
			return segs, nil
		}
	}
	return nil, lastErr
}

func (scrapeStrategy) fetchTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := "https://www.youtube.com/watch?v=" + videoID

	headers := engine.ChromeHeaders()
	headers["accept-language"] = "en-US,en;q=0.9"

	body, _, status, err := engine.Cfg.BrowserClient.Do(http.MethodGet, watchURL, headers, nil)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", status)
	}

	idx := strings.Index(string(body), ytInitialPlayerResponseMarker)
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractBalancedJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var playerResp innertubePlayerResp
	if err := json.Unmarshal(jsonData, &playerResp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return captionTracksOf(&playerResp)
}

// languageFallbacks expands a preferred language into the strategy's retry
// order: preferred, English, then unconstrained.
func languageFallbacks(lang string) []string {
	switch lang {
	case "", "en":
		return []string{"en", ""}
	default:
		return []string{lang, "en", ""}
	}
}

// srv1 timed text: <transcript><text start="1.2" dur="3.4">line</text></transcript>
type srv1Transcript struct {
	Lines []srv1Line `xml:"text"`
}

type srv1Line struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// fetchTimedTextSRV1 fetches a caption track URL in the default srv1 XML
// format and normalizes it into transcript segments (seconds).
func fetchTimedTextSRV1(ctx context.Context, baseURL string) ([]engine.TranscriptSegment, error) {
	body, err := fetchTimedTextRaw(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	var tt srv1Transcript
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segs := make([]engine.TranscriptSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		start, _ := strconv.ParseFloat(line.Start, 64)
		dur, _ := strconv.ParseFloat(line.Dur, 64)
		segs = append(segs, engine.TranscriptSegment{
			Text:            engine.CollapseWhitespace(text),
			StartSeconds:    start,
			DurationSeconds: dur,
		})
	}
	return segs, nil
}
