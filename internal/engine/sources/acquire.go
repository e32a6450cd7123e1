package sources

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Strategy is one independent technique for retrieving captions from the
// upstream platform. Implementations normalize output into transcript
// segments in seconds so downstream code is strategy-agnostic.
//
// Attempt returning (nil, nil) means the upstream answered but had no
// captions for the tried languages — the chain advances exactly as it does
// on error, since an upstream can return HTTP 200 with an empty track list.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, videoID, lang string) ([]engine.TranscriptSegment, error)
}

// defaultChain returns the ordered strategy list. The scrape strategy is
// listed even when the browser client is missing; its attempt fails fast
// and the chain moves on.
func defaultChain() []Strategy {
	return []Strategy{
		scrapeStrategy{},
		iosAPIStrategy{},
		androidPlayerStrategy{},
	}
}

// blockedSignatures mark rate-limit / bot-detection responses. Matching is
// case-insensitive against the collected error text of a failed chain.
var blockedSignatures = []string{
	"429",
	"too many requests",
	"captcha",
	"sign in to confirm",
	"login_required",
	"bot",
	"blocked",
	"forbidden",
	"unusual traffic",
}

// AcquireTranscript produces a Transcript for (videoID, preferredLanguage),
// trying successive strategies until one yields segments. Each attempt is
// bounded by its own timeout and isolated: no failure escapes an individual
// strategy, only exhaustion of the whole chain surfaces an error.
//
// On exhaustion the failure is classified: if any strategy's error matched a
// rate-limit/bot-detection signature the result is ErrUpstreamBlocked
// (retry-worthy), otherwise ErrNoCaptionsAvailable (permanent for this
// video).
func AcquireTranscript(ctx context.Context, videoID, preferredLanguage string) (*engine.Transcript, error) {
	engine.IncrTranscriptRequests()
	return acquireWith(ctx, defaultChain(), videoID, preferredLanguage)
}

func acquireWith(ctx context.Context, chain []Strategy, videoID, lang string) (*engine.Transcript, error) {
	if lang == "" {
		lang = engine.Cfg.PreferredLanguage
	}

	var errTexts []string
	for _, strat := range chain {
		segs, err := runStrategy(ctx, strat, videoID, lang)
		if err != nil {
			slog.Warn("transcript: strategy failed, advancing",
				slog.String("strategy", strat.Name()),
				slog.String("id", videoID),
				slog.Any("error", err))
			errTexts = append(errTexts, err.Error())
			continue
		}
		if len(segs) == 0 {
			slog.Info("transcript: strategy returned zero segments, advancing",
				slog.String("strategy", strat.Name()),
				slog.String("id", videoID))
			continue
		}
		return engine.NewTranscript(segs, strat.Name(), lang), nil
	}

	if looksBlocked(errTexts) {
		engine.IncrUpstreamBlocked()
		return nil, fmt.Errorf("%w: %s", engine.ErrUpstreamBlocked, strings.Join(errTexts, "; "))
	}
	engine.IncrNoCaptions()
	return nil, engine.ErrNoCaptionsAvailable
}

// runStrategy executes one attempt with its own timeout and panic isolation.
// A strategy that needs more than the default budget declares it through the
// Timeout accessor instead of being special-cased by name.
func runStrategy(ctx context.Context, strat Strategy, videoID, lang string) (segs []engine.TranscriptSegment, err error) {
	timeout := engine.Cfg.StrategyTimeout
	if tb, ok := strat.(interface{ Timeout() time.Duration }); ok {
		timeout = tb.Timeout()
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			segs, err = nil, fmt.Errorf("strategy %s panicked: %v", strat.Name(), r)
		}
	}()
	return strat.Attempt(attemptCtx, videoID, lang)
}

func looksBlocked(errTexts []string) bool {
	for _, text := range errTexts {
		lower := strings.ToLower(text)
		for _, sig := range blockedSignatures {
			if strings.Contains(lower, sig) {
				return true
			}
		}
	}
	return false
}
