package jobs

import (
	"regexp"
	"strings"
)

// ExtractedKeywords is the result of one extraction pass. Both slices are
// deduplicated, insertion-ordered, and never nil.
type ExtractedKeywords struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Cap on reported technical keywords. Dictionary hits come first, so
// free-text finds are the ones squeezed out on noisy postings.
const maxTechnicalKeywords = 25

// phraseTriggers recover skill mentions that follow a cue phrase but are
// not in the dictionary ("experience with OpenShift"). They run against
// the original-case text; the captured span keeps its casing.
var phraseTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:erfaring med|experience with|knowledge of|skilled in|proficient in|expertise in)\s+([A-Za-z][A-Za-z0-9\s./+-]{2,30}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:du er|du har|you are|you have)\s+(?:en\s+)?(?:dygtig|god til|skilled|proficient)\s+(?:til\s+)?([A-Za-z][A-Za-z0-9\s./+-]{2,30}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:viden om|kendskab til|knowledge of)\s+([A-Za-z][A-Za-z0-9\s./+-]{2,30}?)(?:[,.\n]|$)`),
	regexp.MustCompile(`(?i)(?:arbejder med|works with|using|ved brug af)\s+([A-Za-z][A-Za-z0-9\s./+-]{2,30}?)(?:[,.\n]|$)`),
}

// triggerStopwords drops captured spans that are just filler words.
var triggerStopwords = map[string]bool{
	"the": true, "and": true, "with": true, "for": true,
	"that": true, "this": true, "from": true,
}

// ExtractKeywords scans a job text for dictionary skills and free-text
// skill mentions. Dedup is exact and case-sensitive, so a dictionary hit
// "docker" and a captured span "Docker" both survive.
func ExtractKeywords(text string) ExtractedKeywords {
	lower := strings.ToLower(text)

	technical := make([]string, 0, maxTechnicalKeywords)
	seen := make(map[string]bool)

	for _, p := range technicalPatterns {
		if p.Match(lower) {
			d := p.Display()
			if !seen[d] {
				seen[d] = true
				technical = append(technical, d)
			}
		}
	}

	for _, re := range phraseTriggers {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			span := strings.TrimSpace(m[1])
			if len(span) <= 2 || triggerStopwords[strings.ToLower(span)] {
				continue
			}
			if !seen[span] {
				seen[span] = true
				technical = append(technical, span)
			}
		}
	}

	if len(technical) > maxTechnicalKeywords {
		technical = technical[:maxTechnicalKeywords]
	}

	soft := make([]string, 0, 8)
	seenSoft := make(map[string]bool)
	for _, p := range softPatterns {
		if p.Match(lower) {
			d := p.Display()
			if !seenSoft[d] {
				seenSoft[d] = true
				soft = append(soft, d)
			}
		}
	}

	return ExtractedKeywords{Technical: technical, Soft: soft}
}

// QuickExtractKeywords runs only the reduced technical dictionary. Used
// for bulk scoring of feed results.
func QuickExtractKeywords(text string) ExtractedKeywords {
	lower := strings.ToLower(text)

	technical := make([]string, 0, 16)
	seen := make(map[string]bool)
	for _, p := range quickPatterns {
		if p.Match(lower) {
			d := p.Display()
			if !seen[d] {
				seen[d] = true
				technical = append(technical, d)
			}
		}
	}

	return ExtractedKeywords{Technical: technical, Soft: []string{}}
}
