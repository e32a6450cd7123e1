package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	stealth "github.com/anatolykoptev/go-stealth"
	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	// Transcript acquisition.
	PreferredLanguage  string        // default caption language when a request has none
	StrategyTimeout    time.Duration // per-strategy bound for scrape/API strategies
	PlayerTimeout      time.Duration // bound for the raw player strategy (two round-trips)
	MaxTranscriptRunes int           // transcript cap before prompting

	HTTPClient    *http.Client
	BrowserClient *stealth.BrowserClient // nil = watch-page scrape strategy disabled
	LLMClient     *llm.Client
	InnertubeRate *rate.Limiter // paces Innertube /player and timedtext calls

	// Cache is the injectable transcript/thumbnail memoization service.
	// Owned by the process in main; nil disables memoization entirely.
	Cache *Cache
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, notes).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.StrategyTimeout <= 0 {
		c.StrategyTimeout = 8 * time.Second
	}
	if c.PlayerTimeout <= 0 {
		c.PlayerTimeout = 12 * time.Second
	}
	if c.MaxTranscriptRunes <= 0 {
		c.MaxTranscriptRunes = 60000
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = "en"
	}
	if c.InnertubeRate == nil {
		c.InnertubeRate = rate.NewLimiter(rate.Every(200*time.Millisecond), 3)
	}
	cfg = c
	Cfg = &cfg
}
