package sources

import (
	"os"
	"testing"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{})
	os.Exit(m.Run())
}

func TestExtractBalancedJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple object with trailing page content",
			in:   `{"a":1};var next = 2;`,
			want: `{"a":1}`,
		},
		{
			name: "nested objects",
			in:   `{"a":{"b":{"c":3}},"d":[{"e":4}]}</script>`,
			want: `{"a":{"b":{"c":3}},"d":[{"e":4}]}`,
		},
		{
			name: "braces inside string literals",
			in:   `{"title":"use } and { freely","n":1} trailing`,
			want: `{"title":"use } and { freely","n":1}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"t":"she said \"hi}\"","n":2};`,
			want: `{"t":"she said \"hi}\"","n":2}`,
		},
		{
			name: "truncated page never balances",
			in:   `{"a":{"b":1}`,
			want: "",
		},
		{
			name: "does not start with brace",
			in:   `var x = {"a":1};`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(extractBalancedJSON([]byte(tt.in)))
			if got != tt.want {
				t.Errorf("extractBalancedJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickTrack(t *testing.T) {
	manualEN := captionTrack{BaseURL: "https://example.com/tt?lang=en", LanguageCode: "en"}
	asrEN := captionTrack{BaseURL: "https://example.com/tt?lang=en&kind=asr", LanguageCode: "en", Kind: "asr"}
	manualKO := captionTrack{BaseURL: "https://example.com/tt?lang=ko", LanguageCode: "ko"}
	poToken := captionTrack{BaseURL: "https://example.com/tt?lang=en&exp=xpe", LanguageCode: "en"}

	tests := []struct {
		name   string
		tracks []captionTrack
		lang   string
		want   captionTrack
		wantOK bool
	}{
		{
			name:   "manual preferred over asr in same language",
			tracks: []captionTrack{asrEN, manualEN},
			lang:   "en",
			want:   manualEN,
			wantOK: true,
		},
		{
			name:   "asr accepted when no manual track",
			tracks: []captionTrack{manualKO, asrEN},
			lang:   "en",
			want:   asrEN,
			wantOK: true,
		},
		{
			name:   "empty lang takes first usable",
			tracks: []captionTrack{poToken, manualKO, manualEN},
			lang:   "",
			want:   manualKO,
			wantOK: true,
		},
		{
			name:   "no track in requested language",
			tracks: []captionTrack{manualKO},
			lang:   "de",
			wantOK: false,
		},
		{
			name:   "po-token tracks are unusable",
			tracks: []captionTrack{poToken},
			lang:   "en",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickTrack(tt.tracks, tt.lang)
			if ok != tt.wantOK {
				t.Fatalf("pickTrack ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.BaseURL != tt.want.BaseURL {
				t.Errorf("pickTrack = %+v, want %+v", got, tt.want)
			}
		})
	}
}
