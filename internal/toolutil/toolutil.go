// Package toolutil provides shared helper functions for the note MCP tools.
package toolutil

import (
	"context"
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// NormLang normalises a language field: trimmed, lowercased, empty → "en".
func NormLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	return lang
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or
// decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	return engine.CacheLoadJSON[T](ctx, engine.Cfg.Cache, key)
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	engine.CacheStoreJSON(ctx, engine.Cfg.Cache, key, v)
}
