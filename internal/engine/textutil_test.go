package engine

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nested tags", in: "<p><s>Hello</s> <s>world</s></p>", want: "Hello world"},
		{name: "double-escaped entities", in: "it&amp;#39;s &quot;quoted&quot;", want: `it's "quoted"`},
		{name: "single-escaped entities", in: "fish &amp; chips &#39;fresh&#39;", want: "fish & chips 'fresh'"},
		{name: "triple-escaped entity", in: "it&amp;amp;#39;s", want: "it's"},
		{name: "plain text untouched", in: "no markup here", want: "no markup here"},
		{name: "surrounding whitespace", in: "  <b>x</b>  ", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.in); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  one\n\ttwo   three\r\n")
	if got != "one two three" {
		t.Errorf("CollapseWhitespace = %q", got)
	}
}
