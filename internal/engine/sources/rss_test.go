package sources

import (
	"strings"
	"testing"

	"github.com/bertramb10/jobscout/internal/engine"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Jobsøgning</title>
<item>
<title><![CDATA[Senior C# Udvikler, TechDanmark A/S]]></title>
<link>https://www.jobindex.dk/vis-job/1</link>
<description><![CDATA[&lt;p&gt;Vi søger en udvikler til vores kontor i København.&#x1F680; Erfaring med C# og Azure.&lt;/p&gt;]]></description>
<category>Fastansættelse</category>
<pubDate>Wed, 26 Aug 2026 08:00:00 +0200</pubDate>
</item>
<item>
<title>Frontend Developer</title>
<link>https://www.jobindex.dk/vis-job/2</link>
<description>React og TypeScript i Aarhus.</description>
<pubDate>not a date</pubDate>
</item>
<item>
<title>No link job</title>
<description>Skipped because it has no link.</description>
</item>
</channel>
</rss>`

func TestParseFeedItems(t *testing.T) {
	engine.Init(engine.Config{})

	jobs := parseFeedItems(sampleFeed, "rss", 20)
	if len(jobs) != 2 {
		t.Fatalf("len = %d, want 2 (item without link skipped)", len(jobs))
	}

	first := jobs[0]
	if first.ID != "rss-1" {
		t.Errorf("id = %q", first.ID)
	}
	if first.Title != "Senior C# Udvikler" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Company != "TechDanmark A/S" {
		t.Errorf("company = %q", first.Company)
	}
	if first.URL != "https://www.jobindex.dk/vis-job/1" {
		t.Errorf("url = %q", first.URL)
	}
	if first.ContractType != "Fastansættelse" {
		t.Errorf("contractType = %q", first.ContractType)
	}
	if first.Location != "københavn" {
		t.Errorf("location = %q", first.Location)
	}
	if first.PostedDate != "2026-08-26T06:00:00Z" {
		t.Errorf("postedDate = %q", first.PostedDate)
	}
	if strings.Contains(first.Description, "<p>") || strings.Contains(first.Description, "&lt;") {
		t.Errorf("description not cleaned: %q", first.Description)
	}

	second := jobs[1]
	if second.ID != "rss-2" {
		t.Errorf("second id = %q", second.ID)
	}
	if second.Company != "Se opslag" {
		t.Errorf("company default = %q", second.Company)
	}
	if second.ContractType != "Se opslag" {
		t.Errorf("contractType default = %q", second.ContractType)
	}
	if second.Location != "aarhus" {
		t.Errorf("location = %q", second.Location)
	}
	if second.PostedDate == "" {
		t.Error("unparseable pubDate should fall back to now")
	}
}

func TestParseFeedItemsCap(t *testing.T) {
	engine.Init(engine.Config{})

	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("<item><title>Job</title><link>https://example.com/")
		b.WriteByte(byte('a' + i%26))
		b.WriteString("</link></item>")
	}
	jobs := parseFeedItems(b.String(), "rss", 20)
	if len(jobs) != 20 {
		t.Errorf("len = %d, want 20", len(jobs))
	}
}

func TestCleanDescription(t *testing.T) {
	engine.Init(engine.Config{MaxDescriptionChars: 50})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unescape and strip", "&lt;b&gt;Hej&lt;/b&gt; verden", "Hej verden"},
		{"uppercase hex entity removed", "Fede&#x1F680; jobs", "Fede jobs"},
		{"lowercase hex entity kept", "a&#x1f680;b", "a&#x1f680;b"},
		{"whitespace collapsed", "a \n\n  b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanDescription(tt.in); got != tt.want {
				t.Errorf("cleanDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	long := strings.Repeat("ø", 200)
	if got := cleanDescription(long); len([]rune(got)) != 50 {
		t.Errorf("length cap = %d runes, want 50", len([]rune(got)))
	}
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		in          string
		wantTitle   string
		wantCompany string
	}{
		{"Senior Udvikler, Firma A/S", "Senior Udvikler", "Firma A/S"},
		{"Udvikler, afdeling X, Firma", "Udvikler", "Firma"},
		{"Bare en titel", "Bare en titel", "Se opslag"},
	}
	for _, tt := range tests {
		title, company := splitTitle(tt.in)
		if title != tt.wantTitle || company != tt.wantCompany {
			t.Errorf("splitTitle(%q) = (%q, %q), want (%q, %q)", tt.in, title, company, tt.wantTitle, tt.wantCompany)
		}
	}
}

func TestInferLocation(t *testing.T) {
	tests := []struct {
		title, desc string
		want        string
	}{
		{"Udvikler i København", "", "københavn"},
		{"Developer", "Our Copenhagen office", "copenhagen"},
		{"Udvikler", "Kontor i Århus C", "århus"},
		{"Stilling i Odense", "", "odense"},
		{"Udvikler, Aalborg Ø", "", "aalborg"},
		{"Remote stilling", "Arbejd hvor du vil", "Danmark"},
	}
	for _, tt := range tests {
		if got := inferLocation(tt.title, tt.desc); got != tt.want {
			t.Errorf("inferLocation(%q, %q) = %q, want %q", tt.title, tt.desc, got, tt.want)
		}
	}
}

func TestAreaCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"københavn", "storkbh"},
		{"København", "storkbh"},
		{"Kobenhavn", "storkbh"},
		{"KBH", "storkbh"},
		{"aarhus", "0751"},
		{"Odense", "0461"},
		{"aalborg", "0851"},
		{"0326", "0326"}, // explicit codes pass through
	}
	for _, tt := range tests {
		if got := areaCode(tt.in); got != tt.want {
			t.Errorf("areaCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldDanish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"København", "kobenhavn"},
		{"Århus", "arhus"},
		{"Vallensbæk", "vallensbek"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := foldDanish(tt.in); got != tt.want {
			t.Errorf("foldDanish(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
