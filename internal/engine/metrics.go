package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	NoteRequests        atomic.Int64
	NotesDegraded       atomic.Int64
	LLMCalls            atomic.Int64
	LLMErrors           atomic.Int64
	TranscriptRequests  atomic.Int64
	ScrapeAttempts      atomic.Int64
	IOSAPIAttempts      atomic.Int64
	AndroidAttempts     atomic.Int64
	UpstreamBlocked     atomic.Int64
	NoCaptions          atomic.Int64
	ThumbnailRequests   atomic.Int64
	CoverageWarnings    atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"note_requests":       metrics.NoteRequests.Load(),
		"notes_degraded":      metrics.NotesDegraded.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"scrape_attempts":     metrics.ScrapeAttempts.Load(),
		"ios_api_attempts":    metrics.IOSAPIAttempts.Load(),
		"android_attempts":    metrics.AndroidAttempts.Load(),
		"upstream_blocked":    metrics.UpstreamBlocked.Load(),
		"no_captions":         metrics.NoCaptions.Load(),
		"thumbnail_requests":  metrics.ThumbnailRequests.Load(),
		"coverage_warnings":   metrics.CoverageWarnings.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"note_requests", "notes_degraded", "llm_calls", "llm_errors",
		"transcript_requests", "scrape_attempts", "ios_api_attempts",
		"android_attempts", "upstream_blocked", "no_captions",
		"thumbnail_requests", "coverage_warnings",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sub-packages.
func IncrNoteRequests()       { metrics.NoteRequests.Add(1) }
func IncrNotesDegraded()      { metrics.NotesDegraded.Add(1) }
func IncrLLMCalls()           { metrics.LLMCalls.Add(1) }
func IncrLLMErrors()          { metrics.LLMErrors.Add(1) }
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrScrapeAttempts()     { metrics.ScrapeAttempts.Add(1) }
func IncrIOSAPIAttempts()     { metrics.IOSAPIAttempts.Add(1) }
func IncrAndroidAttempts()    { metrics.AndroidAttempts.Add(1) }
func IncrUpstreamBlocked()    { metrics.UpstreamBlocked.Add(1) }
func IncrNoCaptions()         { metrics.NoCaptions.Add(1) }
func IncrThumbnailRequests()  { metrics.ThumbnailRequests.Add(1) }
func IncrCoverageWarnings()   { metrics.CoverageWarnings.Add(1) }
