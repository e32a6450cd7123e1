package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// UserAgentBot identifies plain (non-impersonating) HTTP calls: timed-text
// fetches and thumbnail probes.
const UserAgentBot = "NoteTube/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags, unescapes entities, and trims whitespace.
// Caption payloads double-escape entities (&amp;#39; decodes to &#39;, not
// to the apostrophe), so unescaping runs until the text stops changing.
func CleanHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	for {
		unescaped := html.UnescapeString(s)
		if unescaped == s {
			break
		}
		s = unescaped
	}
	return strings.TrimSpace(s)
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Hangul, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// CollapseWhitespace folds runs of whitespace (including newlines from
// multi-line caption cues) into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
