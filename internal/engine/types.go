package engine

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Method identifies one of the fixed explanation methods. The catalog of
// prompt templates and output coercers lives in internal/engine/notes;
// the tags live here so requests can be validated without importing it.
type Method string

const (
	MethodFeynman      Method = "feynman"
	MethodELI5         Method = "eli5"
	MethodCornell      Method = "cornell"
	MethodMindMap      Method = "mindmap"
	MethodSocratic     Method = "socratic"
	MethodAnalogy      Method = "analogy"
	MethodStorytelling Method = "storytelling"
	MethodExpert       Method = "expert"
	MethodCustom       Method = "custom"
)

// AllMethods lists every registered method tag in catalog order.
func AllMethods() []Method {
	return []Method{
		MethodFeynman, MethodELI5, MethodCornell, MethodMindMap,
		MethodSocratic, MethodAnalogy, MethodStorytelling, MethodExpert,
		MethodCustom,
	}
}

// Age groups accepted by the prompt builder.
const (
	AgeElementary = "elementary"
	AgeMiddle     = "middle"
	AgeHigh       = "high"
	AgeAdult      = "adult"
)

// VideoMetadata is the caller-facing description of the source video.
type VideoMetadata struct {
	VideoID         string  `json:"videoId"`
	Title           string  `json:"title"`
	DurationSeconds float64 `json:"durationSeconds"`
	SourceURL       string  `json:"sourceUrl,omitempty"`
}

// NoteRequest is the immutable input to note generation.
// VideoID accepts a full YouTube URL or a bare 11-character id.
// TranscriptText, when set, skips the acquisition chain entirely.
type NoteRequest struct {
	VideoID            string  `json:"video_id" jsonschema:"YouTube URL or 11-char video id"`
	Title              string  `json:"title,omitempty" jsonschema:"Video title for the prompt header"`
	DurationSeconds    float64 `json:"duration_seconds,omitempty" jsonschema:"Video length in seconds"`
	Language           string  `json:"language,omitempty" jsonschema:"Output language code (default: en)"`
	TranscriptText     string  `json:"transcript_text,omitempty" jsonschema:"Pre-fetched transcript; skips acquisition"`
	Method             Method  `json:"method" jsonschema:"Explanation method: feynman, eli5, cornell, mindmap, socratic, analogy, storytelling, expert, custom"`
	AgeGroup           string  `json:"age_group,omitempty" jsonschema:"Target audience: elementary, middle, high, adult (default: adult)"`
	CustomPrompt       string  `json:"custom_prompt,omitempty" jsonschema:"User instruction text, required for method=custom"`
	Domain             string  `json:"domain,omitempty" jsonschema:"Expert domain, used by method=expert"`
	ProviderCredential string  `json:"provider_credential,omitempty" jsonschema:"Override API key for the LLM provider"`
}

// Validate checks the request shape before the pipeline runs.
func (r NoteRequest) Validate() error {
	methods := AllMethods()
	tags := make([]interface{}, len(methods))
	for i, m := range methods {
		tags[i] = m
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.VideoID, validation.Required),
		validation.Field(&r.Method, validation.Required, validation.In(tags...)),
		validation.Field(&r.AgeGroup, validation.In(AgeElementary, AgeMiddle, AgeHigh, AgeAdult)),
		validation.Field(&r.DurationSeconds, validation.Min(0.0)),
		validation.Field(&r.CustomPrompt, validation.Required.When(r.Method == MethodCustom).Error("custom_prompt is required for method=custom")),
	)
}

// NoteSegment is one time-bounded slice of the video. Base fields are
// present for every method; the rest are method-specific and defaulted to
// zero values by the coercion step, never left untyped.
type NoteSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`

	// Feynman
	CoreConcept         string   `json:"coreConcept,omitempty"`
	SimpleExplanation   string   `json:"simpleExplanation,omitempty"`
	EverydayAnalogy     string   `json:"everydayAnalogy,omitempty"`
	KnowledgeGaps       []string `json:"knowledgeGaps,omitempty"`
	SelfExplanationTest string   `json:"selfExplanationTest,omitempty"`

	// ELI5
	ChildFriendlyAnalogy string `json:"childFriendlyAnalogy,omitempty"`
	VisualDescription    string `json:"visualDescription,omitempty"`
	MaxWordsPerSentence  int    `json:"maxWordsPerSentence,omitempty"`

	// Cornell
	CueQuestions []string `json:"cueQuestions,omitempty"`
	NoteLines    []string `json:"noteLines,omitempty"`
	Recap        string   `json:"recap,omitempty"`

	// Socratic
	GuidingQuestions      []string `json:"guidingQuestions,omitempty"`
	ChallengedAssumptions []string `json:"challengedAssumptions,omitempty"`
	ReflectionPrompt      string   `json:"reflectionPrompt,omitempty"`

	// Analogy
	MainAnalogy    string   `json:"mainAnalogy,omitempty"`
	AnalogyMapping []string `json:"analogyMapping,omitempty"`
	WhereItBreaks  string   `json:"whereItBreaks,omitempty"`

	// Storytelling
	Narrative        string   `json:"narrative,omitempty"`
	Characters       []string `json:"characters,omitempty"`
	Plot             string   `json:"plot,omitempty"`
	StoryArc         string   `json:"storyArc,omitempty"`
	EmotionalJourney string   `json:"emotionalJourney,omitempty"`

	// Expert Analysis
	DomainContext         string   `json:"domainContext,omitempty"`
	TechnicalAnalysis     string   `json:"technicalAnalysis,omitempty"`
	KeyTerms              []string `json:"keyTerms,omitempty"`
	PracticalImplications string   `json:"practicalImplications,omitempty"`
}

// MindMapBranch is one node of a mind-map tree. Mind Map replaces the
// time-segment model entirely.
type MindMapBranch struct {
	Topic    string          `json:"topic"`
	Details  []string        `json:"details,omitempty"`
	Children []MindMapBranch `json:"children,omitempty"`
}

// Note is the final product of the pipeline. The engine never mutates a
// Note after returning it; ownership passes to the caller.
type Note struct {
	Method           Method          `json:"method"`
	AgeGroup         string          `json:"ageGroup"`
	FullSummary      string          `json:"fullSummary"`
	Video            VideoMetadata   `json:"video"`
	Segments         []NoteSegment   `json:"segments,omitempty"`
	CentralTopic     string          `json:"centralTopic,omitempty"`
	Branches         []MindMapBranch `json:"branches,omitempty"`
	GeneratedAt      time.Time       `json:"generatedAt"`
	QualityScore     int             `json:"qualityScore"`
	Degraded         bool            `json:"degraded,omitempty"` // extractor fell back, note is minimal but valid
	Warnings         []string        `json:"warnings,omitempty"`
	TranscriptSource string          `json:"transcriptSource,omitempty"` // acquisition strategy tag
}
