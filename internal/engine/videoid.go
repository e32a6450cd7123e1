package engine

import (
	"fmt"
	"regexp"
)

// YouTube video ids are exactly 11 characters of [A-Za-z0-9_-].
// Matching order: watch-URL query parameter, short-URL path, embed path,
// then the whole string as a bare id. No network access.
var (
	watchURLRe = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})(?:[&#]|$)`)
	shortURLRe = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})(?:[?&#]|$)`)
	embedURLRe = regexp.MustCompile(`/(?:embed|shorts|live)/([A-Za-z0-9_-]{11})(?:[?&#]|$)`)
	bareIDRe   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ResolveVideoID extracts the canonical 11-character video id from a full
// YouTube URL in any of the common shapes, or validates a bare id.
func ResolveVideoID(ref string) (string, error) {
	if m := watchURLRe.FindStringSubmatch(ref); len(m) == 2 {
		return m[1], nil
	}
	if m := shortURLRe.FindStringSubmatch(ref); len(m) == 2 {
		return m[1], nil
	}
	if m := embedURLRe.FindStringSubmatch(ref); len(m) == 2 {
		return m[1], nil
	}
	if bareIDRe.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVideoReference, ref)
}
