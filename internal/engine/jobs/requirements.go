package jobs

import (
	"regexp"
	"strings"

	"github.com/bertramb10/jobscout/internal/engine"
)

// Cap on reported requirements.
const maxRequirements = 12

// Bullet and numbered list items are the primary requirement source.
var bulletItemRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[-•*]\s+(.+)$`),
	regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`),
}

// requirementPhrases pull requirements out of running prose. The two
// "minimum N years" patterns capture the year count in group 1 and the
// subject span in group 2; group 1 wins when present, so their output is
// usually too short to survive the length filter. Kept for the rare
// feeds that phrase the year count alone.
var requirementPhrases = []*regexp.Regexp{
	// Danish
	regexp.MustCompile(`(?i)(?:erfaring med|erfaring inden for|erfaring i)[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:du har|du skal)[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:minimum|mindst)\s+(\d+\s+(?:år|years?))\s+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:kendskab til|viden om)[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	// English
	regexp.MustCompile(`(?i)(?:experience (?:with|in))[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:knowledge of)[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:you have|you must have)[\s:]+(.{10,80}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:minimum|at least)\s+(\d+\s+(?:år|years?))\s+(?:of\s+)?(.{10,80}?)(?:[,.\n]|$)`),
}

var lineBreakRe = regexp.MustCompile(`[\r\n]+`)

// ExtractRequirements pulls candidate requirement sentences from a job
// text: list items first, then prose phrases, then cleanup. Dedup runs on
// the cleaned form so the same requirement phrased across a line break
// collapses with its single-line twin.
func ExtractRequirements(text string) []string {
	var raw []string

	for _, line := range strings.Split(text, "\n") {
		for _, re := range bulletItemRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			item := strings.TrimSpace(m[1])
			if len([]rune(item)) > 15 && !strings.HasPrefix(strings.ToLower(item), "learn") {
				raw = append(raw, item)
			}
		}
	}

	for _, re := range requirementPhrases {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			span := m[1]
			if span == "" && len(m) > 2 {
				span = m[2]
			}
			span = strings.TrimSpace(span)
			if len([]rune(span)) > 15 {
				raw = append(raw, span)
			}
		}
	}

	out := make([]string, 0, maxRequirements)
	seen := make(map[string]bool)
	for _, r := range raw {
		cleaned := cleanRequirement(r)
		n := len([]rune(cleaned))
		if n <= 15 || n >= 300 {
			continue
		}
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		out = append(out, cleaned)
		if len(out) == maxRequirements {
			break
		}
	}
	return out
}

func cleanRequirement(s string) string {
	return engine.CollapseWhitespace(lineBreakRe.ReplaceAllString(s, " "))
}
