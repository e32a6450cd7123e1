package notes

import (
	"regexp"
	"strings"
)

// Locating and repairing near-JSON from LLM output.
//
// Models wrap payloads in prose or markdown and emit almost-valid JSON:
// trailing commas, truncated tails, missing commas between adjacent
// objects. The passes below are best-effort syntactic surgery, applied only
// after a direct parse fails, and are no-ops on already-valid JSON. They
// track string literals so quoted braces survive, but an unterminated
// string containing braces can still defeat the balancing pass — that
// fragility is inherited from the approach, not fixable without a full
// parser.

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSONPayload locates the JSON object embedded in raw model output:
// a fenced code block when present, otherwise the substring from the first
// '{' to the last '}'. Returns "" when no object-looking span exists.
func ExtractJSONPayload(raw string) string {
	if m := fencedJSONRe.FindStringSubmatch(raw); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first < 0 {
		return ""
	}
	if last > first {
		return strings.TrimSpace(raw[first : last+1])
	}
	// No closing brace at all — hand the truncated tail to the repairer.
	return strings.TrimSpace(raw[first:])
}

// RepairJSON applies the fixed repair sequence: strip trailing commas,
// insert commas between adjacent }{ object boundaries, then close any
// unterminated string/array/object tail.
func RepairJSON(s string) string {
	s = stripTrailingCommas(s)
	s = insertMissingCommas(s)
	s = closeTruncated(s)
	return s
}

// stripTrailingCommas removes commas that directly precede a closing
// bracket or brace, outside string literals.
func stripTrailingCommas(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			sb.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			sb.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue // drop the comma, keep the whitespace run
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// insertMissingCommas adds a comma between a closing and an opening brace
// separated only by whitespace, outside string literals.
func insertMissingCommas(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		sb.WriteByte(c)
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '}', ']':
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '{' || s[j] == '[') {
				sb.WriteByte(',')
			}
		}
	}
	return sb.String()
}

// closeTruncated appends the minimal closing tokens for a response cut off
// mid-object: closes an unterminated string, then unwinds the open
// bracket/brace stack in order.
func closeTruncated(s string) string {
	trimmed := strings.TrimRight(s, " \t\r\n")
	if trimmed == "" {
		return s
	}

	var stack []byte
	inString, escaped := false, false
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !inString && len(stack) == 0 {
		return s
	}

	var sb strings.Builder
	sb.WriteString(trimmed)
	if inString {
		sb.WriteByte('"')
	}
	// A truncated tail often ends on a dangling comma; valid JSON cannot.
	closers := strings.TrimRight(sb.String(), " \t\r\n")
	if strings.HasSuffix(closers, ",") {
		sb.Reset()
		sb.WriteString(strings.TrimSuffix(closers, ","))
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
