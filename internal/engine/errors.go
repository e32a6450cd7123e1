package engine

import (
	"errors"
	"fmt"
)

// Error taxonomy for the note-generation pipeline. Callers branch on these
// to decide retry behavior, so every failure leaving the engine wraps one
// of them.
var (
	// ErrInvalidVideoReference — the input is neither a YouTube URL nor an
	// 11-character video id. Not retryable.
	ErrInvalidVideoReference = errors.New("invalid video reference")

	// ErrNoCaptionsAvailable — every acquisition strategy came back empty
	// and nothing looked like a block. Permanent for this video.
	ErrNoCaptionsAvailable = errors.New("no captions available for this video")

	// ErrUpstreamBlocked — at least one strategy hit a rate-limit or
	// bot-detection response. Worth retrying later or from another network.
	ErrUpstreamBlocked = errors.New("upstream blocked the request, retry later or from a different network")
)

// ProviderError wraps a failed LLM provider call. It is propagated to the
// caller as-is: without a model response there is nothing to degrade into.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
