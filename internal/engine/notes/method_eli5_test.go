package notes

import "testing"

func TestSentencesWithinCap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "short sentences pass", text: "Light is fast. It moves in straight lines.", want: true},
		{name: "one long sentence fails", text: "This single sentence keeps going and going well past the ten word limit.", want: false},
		{name: "mixed lengths fail", text: "Short one. But this second sentence is definitely much too long for a small child to follow.", want: false},
		{name: "empty text fails", text: "", want: false},
		{name: "exclamations and questions count as sentences", text: "Wow! Is that a rocket? Yes it is.", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sentencesWithinCap(tt.text, 10); got != tt.want {
				t.Errorf("sentencesWithinCap(%q, 10) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
