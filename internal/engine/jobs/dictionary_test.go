package jobs

import "testing"

func TestPatternDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`react`, "react"},
		{`c\+\+`, "c++"},
		{`vue\.js`, "vue.js"},
		{`next\.js`, "next.js"},
		{`\.net`, ".net"},
		{`ci\/cd`, "ci/cd"},
		{`problem.?solving`, "problem-solving"},
		{`over.?the.?air`, "over-the-air"},
		{`a/b.?test`, "a/b-test"},
		{`t-sql`, "t-sql"},
	}
	for _, tt := range tests {
		if got := mustPattern(tt.raw).Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		raw  string
		text string
		want bool
	}{
		{`react`, "we use react here", true},
		{`react`, "preact is not react-dom", true}, // react-dom contains react on a boundary
		{`react`, "preactive", false},
		{`problem.?solving`, "strong problem solving skills", true},
		{`problem.?solving`, "strong problem-solving skills", true},
		{`problem.?solving`, "strong problemsolving skills", true},
		{`vue\.js`, "built with vue.js framework", true},
		{`vue\.js`, "built with vuejs framework", false},
		{`go`, "experience with go required", true},
		{`go`, "mongodb pipelines", false},
		// word-boundary rules around non-word characters: "c++" needs a
		// word character after the trailing +, so it never matches in
		// running prose. The full-text phrase triggers pick these up.
		{`c\+\+`, "we need c++ developers", false},
		{`\.net`, "asp.net experience", true},
		{`\.net`, "the .net platform", false},
	}
	for _, tt := range tests {
		if got := mustPattern(tt.raw).Match(tt.text); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.raw, tt.text, got, tt.want)
		}
	}
}

func TestDictionariesCompile(t *testing.T) {
	for _, set := range [][]Pattern{technicalPatterns, softPatterns, quickPatterns} {
		for _, p := range set {
			if p.re == nil {
				t.Fatalf("pattern %q did not compile", p.raw)
			}
			if p.display == "" {
				t.Errorf("pattern %q has empty display", p.raw)
			}
		}
	}
}

func TestDictionarySizes(t *testing.T) {
	if len(technicalPatterns) < 150 {
		t.Errorf("technical dictionary has %d entries, expected the full set", len(technicalPatterns))
	}
	if len(softPatterns) < 40 {
		t.Errorf("soft dictionary has %d entries, expected the full set", len(softPatterns))
	}
	if len(quickPatterns) < 60 {
		t.Errorf("quick dictionary has %d entries, expected the full set", len(quickPatterns))
	}
}
