package sources

import "testing"

func TestParseSRV3(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<timedtext format="3">
  <body>
    <p t="0" d="2400">Hello world</p>
    <p t="2400" d="3100"><s>This</s><s> is</s><s> a</s><s> test</s></p>
    <p t="5500" d="1000"></p>
    <p t="6500" d="2000">It&amp;#39;s <s>de-tagged</s></p>
  </body>
</timedtext>`)

	segs, err := parseSRV3(body)
	if err != nil {
		t.Fatalf("parseSRV3 error: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3 (empty paragraph skipped)", len(segs))
	}

	if segs[0].Text != "Hello world" || segs[0].StartSeconds != 0 || segs[0].DurationSeconds != 2.4 {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].Text != "This is a test" {
		t.Errorf("nested <s> runs not concatenated: %q", segs[1].Text)
	}
	if segs[1].StartSeconds != 2.4 || segs[1].DurationSeconds != 3.1 {
		t.Errorf("segment 1 timing = %+v, want seconds not milliseconds", segs[1])
	}
	if segs[2].Text != "It's de-tagged" {
		t.Errorf("entities/tags not cleaned: %q", segs[2].Text)
	}
}

func TestParseSRV3Malformed(t *testing.T) {
	if _, err := parseSRV3([]byte("<timedtext><body><p t=")); err == nil {
		t.Error("expected error for truncated XML")
	}
}
