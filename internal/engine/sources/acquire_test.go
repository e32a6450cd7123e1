package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// fakeStrategy is a canned chain member for exercising the fallback runner
// without network access.
type fakeStrategy struct {
	name string
	segs []engine.TranscriptSegment
	err  error
}

func (f fakeStrategy) Name() string { return f.name }

func (f fakeStrategy) Attempt(context.Context, string, string) ([]engine.TranscriptSegment, error) {
	return f.segs, f.err
}

type panicStrategy struct{}

func (panicStrategy) Name() string { return "panicky" }

func (panicStrategy) Attempt(context.Context, string, string) ([]engine.TranscriptSegment, error) {
	panic("unexpected upstream shape")
}

func TestAcquireChainFallsThrough(t *testing.T) {
	three := []engine.TranscriptSegment{
		{Text: "This is a", StartSeconds: 0, DurationSeconds: 2.4},
		{Text: "test of the", StartSeconds: 2.4, DurationSeconds: 3.1},
		{Text: "fallback chain", StartSeconds: 5.5, DurationSeconds: 1.2},
	}
	chain := []Strategy{
		fakeStrategy{name: "scrape"},                      // zero segments, no error
		fakeStrategy{name: "ios-api", err: errors.New("connection reset")},
		fakeStrategy{name: "android-player", segs: three},
	}

	tr, err := acquireWith(context.Background(), chain, "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("acquireWith error: %v", err)
	}
	if tr.MethodUsed != "android-player" {
		t.Errorf("MethodUsed = %q, want %q", tr.MethodUsed, "android-player")
	}
	if len(tr.Segments) != 3 {
		t.Errorf("got %d segments, want 3", len(tr.Segments))
	}
	if tr.FullText != "This is a test of the fallback chain" {
		t.Errorf("FullText = %q", tr.FullText)
	}
}

func TestAcquireStopsAtFirstSuccess(t *testing.T) {
	chain := []Strategy{
		fakeStrategy{name: "scrape", segs: []engine.TranscriptSegment{{Text: "hi"}}},
		panicStrategy{}, // must never run
	}

	tr, err := acquireWith(context.Background(), chain, "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("acquireWith error: %v", err)
	}
	if tr.MethodUsed != "scrape" {
		t.Errorf("MethodUsed = %q, want %q", tr.MethodUsed, "scrape")
	}
}

func TestAcquireClassifiesExhaustion(t *testing.T) {
	tests := []struct {
		name  string
		chain []Strategy
		want  error
	}{
		{
			name: "blocked signature anywhere means UpstreamBlocked",
			chain: []Strategy{
				fakeStrategy{name: "scrape", err: errors.New("HTTP 429 Too Many Requests")},
				fakeStrategy{name: "ios-api"},
				fakeStrategy{name: "android-player", err: errors.New("timeout")},
			},
			want: engine.ErrUpstreamBlocked,
		},
		{
			name: "bot detection phrasing",
			chain: []Strategy{
				fakeStrategy{name: "scrape", err: errors.New("Sign in to confirm you're not a bot")},
			},
			want: engine.ErrUpstreamBlocked,
		},
		{
			name: "all empty means NoCaptionsAvailable",
			chain: []Strategy{
				fakeStrategy{name: "scrape"},
				fakeStrategy{name: "ios-api"},
			},
			want: engine.ErrNoCaptionsAvailable,
		},
		{
			name: "plain failures mean NoCaptionsAvailable",
			chain: []Strategy{
				fakeStrategy{name: "scrape", err: errors.New("connection reset")},
				fakeStrategy{name: "ios-api", err: errors.New("EOF")},
			},
			want: engine.ErrNoCaptionsAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := acquireWith(context.Background(), tt.chain, "dQw4w9WgXcQ", "en")
			if !errors.Is(err, tt.want) {
				t.Errorf("acquireWith error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAcquireIsolatesPanics(t *testing.T) {
	chain := []Strategy{
		panicStrategy{},
		fakeStrategy{name: "android-player", segs: []engine.TranscriptSegment{{Text: "recovered"}}},
	}

	tr, err := acquireWith(context.Background(), chain, "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("acquireWith error: %v", err)
	}
	if tr.MethodUsed != "android-player" {
		t.Errorf("MethodUsed = %q, chain did not advance past the panic", tr.MethodUsed)
	}
}

// deadlineRecorder captures how much attempt budget the runner granted.
type deadlineRecorder struct {
	remaining *time.Duration
}

func (deadlineRecorder) Name() string { return "recorder" }

func (d deadlineRecorder) Attempt(ctx context.Context, _, _ string) ([]engine.TranscriptSegment, error) {
	if deadline, ok := ctx.Deadline(); ok {
		*d.remaining = time.Until(deadline)
	}
	return []engine.TranscriptSegment{{Text: "x"}}, nil
}

// widenedRecorder additionally declares a larger budget via the Timeout
// accessor, the way the raw player strategy does.
type widenedRecorder struct {
	deadlineRecorder
}

func (widenedRecorder) Timeout() time.Duration { return engine.Cfg.PlayerTimeout }

func TestRunStrategyTimeoutBudgets(t *testing.T) {
	ctx := context.Background()

	var plain time.Duration
	if _, err := runStrategy(ctx, deadlineRecorder{remaining: &plain}, "dQw4w9WgXcQ", "en"); err != nil {
		t.Fatalf("runStrategy error: %v", err)
	}
	if plain <= 0 || plain > engine.Cfg.StrategyTimeout {
		t.Errorf("default budget = %v, want within (0, %v]", plain, engine.Cfg.StrategyTimeout)
	}

	var widened time.Duration
	if _, err := runStrategy(ctx, widenedRecorder{deadlineRecorder{remaining: &widened}}, "dQw4w9WgXcQ", "en"); err != nil {
		t.Fatalf("runStrategy error: %v", err)
	}
	if widened <= engine.Cfg.StrategyTimeout || widened > engine.Cfg.PlayerTimeout {
		t.Errorf("widened budget = %v, want within (%v, %v]", widened, engine.Cfg.StrategyTimeout, engine.Cfg.PlayerTimeout)
	}
}

func TestAndroidPlayerDeclaresWiderTimeout(t *testing.T) {
	var strat Strategy = androidPlayerStrategy{}
	tb, ok := strat.(interface{ Timeout() time.Duration })
	if !ok {
		t.Fatal("android-player strategy must declare its own timeout")
	}
	if got := tb.Timeout(); got != engine.Cfg.PlayerTimeout {
		t.Errorf("Timeout() = %v, want %v", got, engine.Cfg.PlayerTimeout)
	}
}

func TestDefaultChainOrder(t *testing.T) {
	chain := defaultChain()
	want := []string{"scrape", "ios-api", "android-player"}
	if len(chain) != len(want) {
		t.Fatalf("chain has %d strategies, want %d", len(chain), len(want))
	}
	for i, name := range want {
		if chain[i].Name() != name {
			t.Errorf("chain[%d] = %q, want %q", i, chain[i].Name(), name)
		}
	}
}
