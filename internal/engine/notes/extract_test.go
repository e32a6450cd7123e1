package notes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

func feynmanReq() engine.NoteRequest {
	return engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: engine.MethodFeynman}
}

func testVideo() engine.VideoMetadata {
	return engine.VideoMetadata{VideoID: "dQw4w9WgXcQ", Title: "Test", DurationSeconds: 600}
}

func TestExtractCoercesValidFencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n" + `{
  "fullSummary": "A thorough walk through the basics of the topic, repeated until it is long enough to count.",
  "segments": [
    {
      "start": 0,
      "end": 300,
      "title": "Intro",
      "summary": "The opening part",
      "coreConcept": "The single idea being taught here",
      "simpleExplanation": "` + strings.Repeat("e", 120) + `",
      "everydayAnalogy": "` + strings.Repeat("a", 60) + `",
      "knowledgeGaps": ["why?", "how?"],
      "selfExplanationTest": "` + strings.Repeat("t", 60) + `"
    }
  ]
}` + "\n```"

	note := Extract(raw, feynmanReq(), testVideo())
	require.NotNil(t, note)
	assert.False(t, note.Degraded)
	require.Len(t, note.Segments, 1)

	seg := note.Segments[0]
	assert.Equal(t, 0.0, seg.Start)
	assert.Equal(t, 300.0, seg.End)
	assert.Equal(t, "Intro", seg.Title)
	assert.Equal(t, "The single idea being taught here", seg.CoreConcept)
	assert.Equal(t, []string{"why?", "how?"}, seg.KnowledgeGaps)
	assert.Equal(t, 120, len(seg.SimpleExplanation))
	assert.Equal(t, engine.MethodFeynman, note.Method)
	assert.Equal(t, engine.AgeAdult, note.AgeGroup)
}

// Single segment with every Feynman sub-check passing: segment portion is 70,
// the short summary and the out-of-band segment count contribute nothing.
func TestExtractFeynmanQualityScore(t *testing.T) {
	raw := `{
  "fullSummary": "s",
  "segments": [
    {
      "start": 0, "end": 30, "title": "Intro", "summary": "s",
      "coreConcept": "` + strings.Repeat("c", 20) + `",
      "simpleExplanation": "` + strings.Repeat("e", 120) + `",
      "everydayAnalogy": "` + strings.Repeat("a", 60) + `",
      "knowledgeGaps": ["q1", "q2"],
      "selfExplanationTest": "` + strings.Repeat("t", 60) + `"
    }
  ]
}`

	note := Extract(raw, feynmanReq(), testVideo())
	require.NotNil(t, note)
	assert.Equal(t, 70, note.QualityScore)
}

func TestExtractRepairsAlmostValidJSON(t *testing.T) {
	// Trailing comma plus a missing closing brace.
	raw := `{"fullSummary": "ok", "segments": [{"start": 0, "end": 60, "title": "t", "summary": "s",}]`

	note := Extract(raw, feynmanReq(), testVideo())
	require.NotNil(t, note)
	assert.False(t, note.Degraded)
	require.Len(t, note.Segments, 1)
	assert.Equal(t, "t", note.Segments[0].Title)
}

func TestExtractDegradesButNeverFails(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain prose", raw: "I am sorry, I cannot structure this video."},
		{name: "empty response", raw: ""},
		{name: "hopeless braces", raw: `{{{"not json at all`},
		{name: "valid json but no segments", raw: `{"fullSummary": "only a summary"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := Extract(tt.raw, feynmanReq(), testVideo())
			require.NotNil(t, note)
			assert.True(t, note.Degraded)
			require.NotEmpty(t, note.Segments, "degraded note must still carry a segment")
			assert.Equal(t, 0.0, note.Segments[0].Start)
			assert.Equal(t, 60.0, note.Segments[0].End)
			assert.Equal(t, 0, note.QualityScore)
		})
	}
}

func TestExtractDegradedSegmentClampsToShortVideo(t *testing.T) {
	video := testVideo()
	video.DurationSeconds = 42

	note := Extract("nope", feynmanReq(), video)
	require.True(t, note.Degraded)
	assert.Equal(t, 42.0, note.Segments[0].End)
}

func TestExtractMindMapBranches(t *testing.T) {
	raw := `{
  "fullSummary": "overview",
  "centralTopic": "Photosynthesis",
  "branches": [
    {"topic": "Light reactions", "details": ["thylakoid", "ATP"], "children": [
      {"topic": "Photosystem II", "details": ["water splitting"]}
    ]},
    {"topic": "Calvin cycle", "details": ["carbon fixation"]}
  ]
}`

	req := engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: engine.MethodMindMap}
	note := Extract(raw, req, testVideo())
	require.NotNil(t, note)
	assert.False(t, note.Degraded)
	assert.Equal(t, "Photosynthesis", note.CentralTopic)
	require.Len(t, note.Branches, 2)
	require.Len(t, note.Branches[0].Children, 1)
	assert.Equal(t, "Photosystem II", note.Branches[0].Children[0].Topic)
	assert.Empty(t, note.Segments)
}

func TestExtractUnknownMethodFallsBackToCustom(t *testing.T) {
	raw := `{"fullSummary": "ok", "segments": [{"start": 0, "end": 10, "title": "t", "summary": "s"}]}`
	req := engine.NoteRequest{VideoID: "dQw4w9WgXcQ", Method: "unregistered"}

	note := Extract(raw, req, testVideo())
	require.NotNil(t, note)
	require.Len(t, note.Segments, 1)
}
