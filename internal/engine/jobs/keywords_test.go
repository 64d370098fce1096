package jobs

import (
	"slices"
	"strings"
	"testing"
)

func TestExtractKeywordsDictionaryHits(t *testing.T) {
	text := "We are looking for a developer skilled in React and TypeScript. " +
		"You will work with Docker, Kubernetes and PostgreSQL in an agile team."

	got := ExtractKeywords(text)

	for _, want := range []string{"typescript", "react", "docker", "kubernetes", "postgresql", "agile"} {
		if !slices.Contains(got.Technical, want) {
			t.Errorf("technical missing %q: %v", want, got.Technical)
		}
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "We need a developer with experience with Kubernetes and strong communication skills."

	first := ExtractKeywords(text)
	second := ExtractKeywords(text)

	if !slices.Equal(first.Technical, second.Technical) {
		t.Errorf("technical differs between runs: %v vs %v", first.Technical, second.Technical)
	}
	if !slices.Equal(first.Soft, second.Soft) {
		t.Errorf("soft differs between runs: %v vs %v", first.Soft, second.Soft)
	}
}

func TestExtractKeywordsMixedSentence(t *testing.T) {
	got := ExtractKeywords("We need a developer with experience with Kubernetes and strong communication skills.")

	if !slices.Contains(got.Technical, "kubernetes") {
		t.Errorf("technical missing kubernetes: %v", got.Technical)
	}
	if !slices.Contains(got.Soft, "communication") {
		t.Errorf("soft missing communication: %v", got.Soft)
	}
}

func TestExtractKeywordsInsertionOrder(t *testing.T) {
	// Dictionary order decides output order, not text order.
	text := "kubernetes before python in the text, but python is listed first"
	got := ExtractKeywords(text)

	pi := slices.Index(got.Technical, "python")
	ki := slices.Index(got.Technical, "kubernetes")
	if pi < 0 || ki < 0 {
		t.Fatalf("expected both hits, got %v", got.Technical)
	}
	if pi > ki {
		t.Errorf("python should precede kubernetes: %v", got.Technical)
	}
}

func TestExtractKeywordsPhraseTrigger(t *testing.T) {
	text := "Vi søger en udvikler. Du skal have erfaring med OpenShift, og kendskab til Backstage.\n" +
		"Experience with Terraform Cloud, preferably in production."

	got := ExtractKeywords(text)

	for _, want := range []string{"OpenShift", "Backstage", "Terraform Cloud"} {
		if !slices.Contains(got.Technical, want) {
			t.Errorf("technical missing trigger capture %q: %v", want, got.Technical)
		}
	}
}

func TestExtractKeywordsTriggerStopwords(t *testing.T) {
	got := ExtractKeywords("You have experience with the, and you are proficient in it.")
	for _, kw := range got.Technical {
		if strings.EqualFold(kw, "the") || strings.EqualFold(kw, "and") {
			t.Errorf("stopword leaked into keywords: %v", got.Technical)
		}
	}
}

func TestExtractKeywordsCaseSensitiveDedup(t *testing.T) {
	// Dictionary reports lowercase "docker"; a trigger capture "Docker"
	// is a distinct string and both are kept.
	text := "We use docker daily. You must have experience with Docker, too."
	got := ExtractKeywords(text)

	if !slices.Contains(got.Technical, "docker") {
		t.Fatalf("missing dictionary hit: %v", got.Technical)
	}
	if !slices.Contains(got.Technical, "Docker") {
		t.Errorf("case-differing capture should be kept: %v", got.Technical)
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	var b strings.Builder
	for _, p := range technicalPatterns[:60] {
		b.WriteString(" xyz ")
		b.WriteString(p.Display())
		b.WriteString(" xyz ")
	}
	got := ExtractKeywords(b.String())
	if len(got.Technical) > 25 {
		t.Errorf("technical = %d entries, want <= 25", len(got.Technical))
	}
}

func TestExtractKeywordsSoft(t *testing.T) {
	text := "Du er selvstændig og struktureret, and you value teamwork and problem-solving."
	got := ExtractKeywords(text)

	for _, want := range []string{"selvstændig", "struktureret", "teamwork", "problem-solving"} {
		if !slices.Contains(got.Soft, want) {
			t.Errorf("soft missing %q: %v", want, got.Soft)
		}
	}
}

func TestExtractKeywordsEmptyText(t *testing.T) {
	got := ExtractKeywords("")
	if got.Technical == nil || got.Soft == nil {
		t.Error("result slices must be non-nil for JSON encoding")
	}
	if len(got.Technical) != 0 || len(got.Soft) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestQuickExtractKeywords(t *testing.T) {
	got := QuickExtractKeywords("Frontend Developer - React & TypeScript. Erfaring med React, TypeScript, HTML, CSS.")

	for _, want := range []string{"javascript", "rust"} {
		if slices.Contains(got.Technical, want) {
			t.Errorf("unexpected hit %q", want)
		}
	}
	for _, want := range []string{"typescript", "react", "html", "css"} {
		if !slices.Contains(got.Technical, want) {
			t.Errorf("missing %q: %v", want, got.Technical)
		}
	}
	if got.Soft == nil || len(got.Soft) != 0 {
		t.Errorf("quick extraction must return empty non-nil soft set: %v", got.Soft)
	}
}
