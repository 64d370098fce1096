package sources

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bertramb10/jobscout/internal/engine"
)

// Regex-based RSS parsing. The job-board feeds are flat and predictable
// enough that a full XML decoder buys nothing, and the boards routinely
// ship entity soup that encoding/xml rejects outright.
var (
	itemRe        = regexp.MustCompile(`(?s)<item>(.*?)</item>`)
	titleRe       = regexp.MustCompile(`<title><!\[CDATA\[(.*?)\]\]></title>|<title>(.*?)</title>`)
	linkRe        = regexp.MustCompile(`<link>(.*?)</link>`)
	descriptionRe = regexp.MustCompile(`(?s)<description><!\[CDATA\[(.*?)\]\]></description>|<description>(.*?)</description>`)
	categoryRe    = regexp.MustCompile(`<category>(.*?)</category>`)
	pubDateRe     = regexp.MustCompile(`<pubDate>(.*?)</pubDate>`)

	hexEntityRe = regexp.MustCompile(`&#x[0-9A-F]+;`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
)

// firstGroup returns the first non-empty capture of a CDATA-or-plain
// field alternation.
func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	if len(m) > 2 {
		return m[2]
	}
	return ""
}

// cleanDescription unescapes the angle brackets the feeds double-encode,
// drops uppercase-hex character references, strips tags, collapses
// whitespace and caps the length. Lowercase hex references survive; the
// boards only emit uppercase ones.
func cleanDescription(raw string) string {
	s := strings.ReplaceAll(raw, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = hexEntityRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	s = engine.CollapseWhitespace(s)
	return engine.TruncateRunes(s, engine.Cfg.MaxDescriptionChars, "")
}

// splitTitle separates "Job Title, Company" feed titles. With no comma
// the whole title is the job title and the company is unknown.
func splitTitle(title string) (jobTitle, company string) {
	parts := strings.Split(title, ",")
	jobTitle = strings.TrimSpace(parts[0])
	if jobTitle == "" {
		jobTitle = title
	}
	company = "Se opslag"
	if len(parts) > 1 {
		company = strings.TrimSpace(parts[len(parts)-1])
	}
	return jobTitle, company
}

// cityPatterns capture the four big cities with their common spellings.
// Matched against lowercased text, so the result is lowercase.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:København|Copenhagen|Storkøbenhavn|KBH)`),
	regexp.MustCompile(`(?i)(?:Aarhus|Århus)`),
	regexp.MustCompile(`(?i)(?:Odense)`),
	regexp.MustCompile(`(?i)(?:Aalborg)`),
}

// inferLocation guesses a city from title plus description, defaulting
// to the whole country.
func inferLocation(title, description string) string {
	fullText := strings.ToLower(title + " " + description)
	for _, re := range cityPatterns {
		if loc := re.FindString(fullText); loc != "" {
			return loc
		}
	}
	return "Danmark"
}

// parsePubDate converts the RFC 1123 dates the feeds emit to RFC 3339.
// Unparseable dates fall back to now.
func parsePubDate(s string) string {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// parseFeedItems walks <item> blocks and builds job records. Items
// without a title or link are skipped; ids number the accepted items.
func parseFeedItems(xml, idPrefix string, maxJobs int) []engine.JobRecord {
	var jobs []engine.JobRecord

	for _, m := range itemRe.FindAllStringSubmatch(xml, -1) {
		if len(jobs) >= maxJobs {
			break
		}
		item := m[1]

		title := firstGroup(titleRe, item)
		link := firstGroup(linkRe, item)
		if title == "" || link == "" {
			continue
		}

		description := cleanDescription(firstGroup(descriptionRe, item))
		if description == "" {
			description = "Klik for at se fuld jobbeskrivelse"
		}
		contractType := firstGroup(categoryRe, item)
		if contractType == "" {
			contractType = "Se opslag"
		}

		jobTitle, company := splitTitle(title)

		jobs = append(jobs, engine.JobRecord{
			ID:           idPrefix + "-" + strconv.Itoa(len(jobs)+1),
			Title:        jobTitle,
			Company:      company,
			Location:     inferLocation(title, description),
			Description:  description,
			URL:          link,
			PostedDate:   parsePubDate(firstGroup(pubDateRe, item)),
			ContractType: contractType,
		})
	}
	return jobs
}

// areaCodes maps city names to the job boards' area query values.
var areaCodes = map[string]string{
	"københavn":     "storkbh",
	"kobenhavn":     "storkbh",
	"kbh":           "storkbh",
	"storkøbenhavn": "storkbh",
	"aarhus":        "0751",
	"odense":        "0461",
	"aalborg":       "0851",
}

// foldDanish strips combining marks and maps the non-decomposing Danish
// ø to o, so "København" and "Kobenhavn" land on the same key.
func foldDanish(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.Map(func(r rune) rune {
		switch r {
		case 'ø', 'Ø':
			return 'o'
		case 'æ', 'Æ':
			return 'e'
		}
		return r
	}, folded)
	return strings.ToLower(folded)
}

// areaCode resolves a user-supplied location to a board area value,
// falling back to the raw input so explicit codes pass through.
func areaCode(location string) string {
	lower := strings.ToLower(location)
	if code, ok := areaCodes[lower]; ok {
		return code
	}
	if code, ok := areaCodes[foldDanish(location)]; ok {
		return code
	}
	return location
}
