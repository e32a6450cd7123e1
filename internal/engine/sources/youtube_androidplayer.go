package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Strategy 3: raw ANDROID-client protocol call.
//
// Issues the internal /player request directly with a spoofed ANDROID
// client identity, picks the caption track matching the requested language
// (or the first available track), fetches the srv3 timed-text XML, and
// hand-parses it. srv3 segments are <p t="startMs" d="durationMs"> elements
// whose text may be wrapped in nested <s> runs; tags are stripped, not
// interpreted.

type androidPlayerStrategy struct{}

func (androidPlayerStrategy) Name() string { return "android-player" }

// Timeout widens the per-attempt budget: this strategy makes two upstream
// round-trips, /player then the timed-text fetch.
func (androidPlayerStrategy) Timeout() time.Duration { return engine.Cfg.PlayerTimeout }

func (s androidPlayerStrategy) Attempt(ctx context.Context, videoID, lang string) ([]engine.TranscriptSegment, error) {
	engine.IncrAndroidAttempts()

	playerResp, err := callPlayer(ctx, videoID, innertubeClient{
		ClientName:        "ANDROID",
		ClientVersion:     ytAndroidVersion,
		AndroidSdkVersion: 30,
		Hl:                "en",
		Gl:                "US",
	}, ytAndroidUA, "3")
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

	// Requested language, else the first available track.
	track, ok := pickTrack(tracks, lang)
	if !ok {
		track, ok = pickTrack(tracks, "")
		if !ok {
			return nil, fmt.Errorf("all %d caption tracks require PoToken", len(tracks))
		}
	}
	return fetchTimedTextSRV3(ctx, track.BaseURL)
}

// srv3 timed text. <p> carries timing in milliseconds; text may be plain
// chardata or nested <s> runs, so the inner XML is captured and de-tagged.
type srv3TimedText struct {
	Paragraphs []srv3Paragraph `xml:"body>p"`
}

type srv3Paragraph struct {
	StartMs string `xml:"t,attr"`
	DurMs   string `xml:"d,attr"`
	Inner   string `xml:",innerxml"`
}

// fetchTimedTextSRV3 fetches a caption track in srv3 format and hand-parses
// the XML into transcript segments (seconds, not milliseconds).
func fetchTimedTextSRV3(ctx context.Context, baseURL string) ([]engine.TranscriptSegment, error) {
	sep := "&"
	if !strings.Contains(baseURL, "?") {
		sep = "?"
	}
	body, err := fetchTimedTextRaw(ctx, baseURL+sep+"fmt=srv3")
	if err != nil {
		return nil, err
	}
	return parseSRV3(body)
}

func parseSRV3(body []byte) ([]engine.TranscriptSegment, error) {
	var tt srv3TimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse srv3 XML: %w", err)
	}

	segs := make([]engine.TranscriptSegment, 0, len(tt.Paragraphs))
	for _, p := range tt.Paragraphs {
		// Nested <s> runs concatenate; every tag is stripped.
		text := engine.CollapseWhitespace(engine.CleanHTML(p.Inner))
		if text == "" {
			continue
		}
		startMs, _ := strconv.ParseFloat(p.StartMs, 64)
		durMs, _ := strconv.ParseFloat(p.DurMs, 64)
		segs = append(segs, engine.TranscriptSegment{
			Text:            text,
			StartSeconds:    startMs / 1000.0,
			DurationSeconds: durMs / 1000.0,
		})
	}
	return segs, nil
}

// fetchTimedTextRaw GETs a caption track URL with exponential backoff.
// Shared by all three strategies' track fetchers.
func fetchTimedTextRaw(ctx context.Context, trackURL string) ([]byte, error) {
	if err := engine.Cfg.InnertubeRate.Wait(ctx); err != nil {
		return nil, err
	}

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := engine.Cfg.HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if engine.IsRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("timedtext: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(fmt.Errorf("timedtext: status %d", resp.StatusCode))
		}
		return io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3))
}
