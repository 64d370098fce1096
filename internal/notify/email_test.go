package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bertramb10/jobscout/internal/engine"
)

func TestProviderFor(t *testing.T) {
	tests := []struct {
		user     string
		wantHost string
		wantPort int
		wantSSL  bool
	}{
		{"alerts@yahoo.dk", "smtp.mail.yahoo.com", 465, true},
		{"me@outlook.com", "smtp-mail.outlook.com", 587, false},
		{"me@hotmail.com", "smtp-mail.outlook.com", 587, false},
		{"me@gmail.com", "smtp.gmail.com", 587, false},
		{"me@example.com", "smtp.gmail.com", 587, false},
	}
	for _, tt := range tests {
		p := providerFor(tt.user)
		if p.host != tt.wantHost || p.port != tt.wantPort || p.ssl != tt.wantSSL {
			t.Errorf("providerFor(%q) = %+v", tt.user, p)
		}
	}
}

func TestSubjectLine(t *testing.T) {
	if got := subjectLine(1); got != "🎯 1 New High-Match Job Found!" {
		t.Errorf("singular = %q", got)
	}
	if got := subjectLine(3); got != "🎯 3 New High-Match Jobs Found!" {
		t.Errorf("plural = %q", got)
	}
}

func TestSendJobNotificationNotConfigured(t *testing.T) {
	engine.Init(engine.Config{})

	err := SendJobNotification(context.Background(), "b@example.com", 80, []engine.JobRecord{{Title: "X"}})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func sampleJobs() []engine.JobRecord {
	return []engine.JobRecord{
		{
			Title:       "Software Udvikler - .NET/C#",
			Company:     "TechDanmark A/S",
			Location:    "København",
			Description: strings.Repeat("Vi søger en dygtig udvikler. ", 20),
			URL:         "https://www.jobindex.dk/vis-job/1",
			MatchScore:  92,
		},
		{
			Title:       "Frontend Developer <script>",
			Company:     "Digital Solutions ApS",
			Location:    "Aarhus",
			Description: "React og TypeScript.",
			URL:         "https://www.jobindex.dk/vis-job/2",
			MatchScore:  85,
		},
	}
}

func TestRenderHTMLBody(t *testing.T) {
	body, err := renderHTMLBody(sampleJobs(), 80)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"2 New High-Match Jobs Found!",
		"Software Udvikler - .NET/C#",
		"TechDanmark A/S • København",
		"92% Match",
		`href="https://www.jobindex.dk/vis-job/1"`,
		"&gt;80% match",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("html body missing %q", want)
		}
	}

	// Job fields are attacker-ish feed data and must be escaped.
	if strings.Contains(body, "<script>") {
		t.Error("unescaped job title in html body")
	}

	// Long descriptions are trimmed to a teaser with an ellipsis; short
	// ones pass through untouched.
	if strings.Contains(body, strings.Repeat("Vi søger en dygtig udvikler. ", 20)) {
		t.Error("description not truncated")
	}
	if !strings.Contains(body, "...") {
		t.Error("truncated teaser missing ellipsis")
	}
	if !strings.Contains(body, "React og TypeScript.</p>") {
		t.Error("short description should render without an ellipsis")
	}
}

func TestRenderTextBody(t *testing.T) {
	text := renderTextBody(sampleJobs())

	for _, want := range []string{
		"2 New High-Match Jobs Found!",
		"TechDanmark A/S • København",
		"Match: 92%",
		"https://www.jobindex.dk/vis-job/2",
		"---",
		"Denne email blev sendt automatisk",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}
