package notes

import (
	"fmt"
	"strings"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Prompt rendering — deterministic string construction, no IO. One prompt
// per (request, method); the method owns its pedagogical rules and output
// schema, this file owns the shared scaffolding around them.

const promptHeader = `You are an expert educational content creator who turns video transcripts into structured study notes.

Video:
- Title: %s
- Video ID: %s
- Duration: %.0f seconds

Target audience: %s

%s

Respond with valid JSON only (no markdown, no ` + "```json" + ` block) matching this exact schema:
%s

Rules that apply to every method:
- segments must be ordered by "start"; the first segment starts at 0 and the last segment's "end" should reach the video duration
- cover the ENTIRE transcript; do not skip the middle or the end of the video
- every field in the schema must be present; use "" or [] when you have nothing, never omit keys
- Do NOT invent content that is not supported by the transcript
%s
Transcript:
%s`

// audienceInstructions adapts tone and depth per age group.
var audienceInstructions = map[string]string{
	engine.AgeElementary: "Elementary school students (ages 7-12). Use short sentences, familiar words, and playful concrete examples. Avoid jargon entirely.",
	engine.AgeMiddle:     "Middle school students (ages 12-15). Plain language with new terms defined the moment they appear. Relate concepts to school subjects and everyday life.",
	engine.AgeHigh:       "High school students (ages 15-18). Precise terminology is fine when explained. Connect ideas to exam-relevant concepts and real-world applications.",
	engine.AgeAdult:      "Adult learners. Direct, information-dense explanations. Keep necessary technical vocabulary and focus on practical takeaways.",
}

// BuildPrompt renders the full instruction prompt for one request. The
// translation block is injected only when the detected transcript language
// differs from the requested output language.
func BuildPrompt(req engine.NoteRequest, transcript string) string {
	spec, ok := lookup(req.Method)
	if !ok {
		spec = registry[engine.MethodCustom]
	}

	ageGroup := req.AgeGroup
	if ageGroup == "" {
		ageGroup = engine.AgeAdult
	}
	audience, ok := audienceInstructions[ageGroup]
	if !ok {
		audience = audienceInstructions[engine.AgeAdult]
	}

	capped := engine.TruncateRunes(transcript, engine.Cfg.MaxTranscriptRunes, " [transcript truncated]")

	return fmt.Sprintf(promptHeader,
		titleOrFallback(req),
		req.VideoID,
		req.DurationSeconds,
		audience,
		spec.instructions(req),
		spec.schema,
		translationBlock(req.Language, capped),
		capped,
	)
}

func titleOrFallback(req engine.NoteRequest) string {
	if req.Title != "" {
		return req.Title
	}
	return "(untitled video)"
}

// translationBlock returns the language directive line(s). The transcript
// language is detected with the Hangul-vs-Latin rune heuristic; when it
// differs from the requested output language the model is told to translate
// while structuring.
func translationBlock(requested, transcript string) string {
	if requested == "" {
		requested = "en"
	}
	detected := engine.DetectTranscriptLanguage(transcript)
	if detected == "" || detected == requested {
		return fmt.Sprintf("- Write ALL output text in %q\n", requested)
	}
	return fmt.Sprintf("- The transcript is in %q but the user wants notes in %q: translate all generated text into %q while keeping names and technical terms recognizable\n",
		detected, requested, requested)
}

// joinLines renders instruction bullet lists for method files.
func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
