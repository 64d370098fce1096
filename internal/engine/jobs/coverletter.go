package jobs

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultCompanyName is used when no company pattern matches.
const defaultCompanyName = "your company"

// companyPatterns are tried in order; the first capture wins. The (?i)
// flag folds the leading [A-Z] too, matching lowercased company names
// the way they appear in informal Danish postings.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hos|at)\s+([A-Z][a-zA-Z0-9\s&.]+?)(?:\.|,|\s+(?:er|is|søger|seeks))`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z0-9\s&.]+?)\s+(?:søger|is looking for|is seeking)`),
	regexp.MustCompile(`(?i)position\s+(?:at|hos)\s+([A-Z][a-zA-Z0-9\s&.]+)`),
}

// ExtractCompanyName guesses the hiring company from the job text.
func ExtractCompanyName(jobText string) string {
	for _, re := range companyPatterns {
		if m := re.FindStringSubmatch(jobText); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return defaultCompanyName
}

// ComposeCoverLetter builds an application letter from the job keywords
// and the resume. Paragraphs with nothing to say (no new skills, no soft
// keywords) are dropped rather than left as blank lines.
func ComposeCoverLetter(jobText string, kw ExtractedKeywords, p *ResumeProfile) string {
	companyName := ExtractCompanyName(jobText)
	allSkills := p.AllSkills()

	matched := make([]string, 0, 6)
	newSkills := make([]string, 0, 3)
	for _, skill := range kw.Technical {
		if containsEither(allSkills, skill) {
			if len(matched) < 6 {
				matched = append(matched, skill)
			}
		} else if len(newSkills) < 3 {
			newSkills = append(newSkills, skill)
		}
	}

	var paragraphs []string

	paragraphs = append(paragraphs, fmt.Sprintf(
		"Dear Hiring Manager,\n\nI am writing to express my strong interest in the position at %s. %s",
		companyName, p.Summary))

	paragraphs = append(paragraphs, experienceParagraph(p))
	paragraphs = append(paragraphs, emphasisParagraph(kw, matched, p))

	if len(newSkills) > 0 {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"I am particularly excited about the opportunity to deepen my expertise in %s, and I am committed to quickly mastering any technologies that are new to me.",
			strings.Join(newSkills, ", ")))
	}

	paragraphs = append(paragraphs, educationParagraph(p))

	if len(kw.Soft) > 0 {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"I believe my %s approach aligns well with your team's values and work culture.",
			strings.Join(head(kw.Soft, 3), ", ")))
	}

	paragraphs = append(paragraphs,
		"I am confident that my technical skills, proven ability to learn quickly, and dedication to excellence would make me a valuable addition to your team. I would welcome the opportunity to discuss how my background aligns with your needs.",
		"Thank you for considering my application. I look forward to the possibility of speaking with you further.",
		fmt.Sprintf("Best regards,\n%s\n%s\n%s", p.PersonalInfo.Name, p.PersonalInfo.Email, p.PersonalInfo.Phone))

	return strings.Join(paragraphs, "\n\n")
}

func experienceParagraph(p *ResumeProfile) string {
	if len(p.Experience) == 0 {
		return "Through my studies and projects, I have developed strong practical skills in software development."
	}
	latest := p.Experience[0]
	s := fmt.Sprintf("During my recent role as %s at %s, I gained valuable hands-on experience with %s.",
		latest.Position, latest.Company,
		strings.ToLower(strings.Join(head(latest.Responsibilities, 2), " and ")))
	if len(latest.Achievements) > 0 {
		s += " " + latest.Achievements[0]
	}
	return s
}

func emphasisParagraph(kw ExtractedKeywords, matched []string, p *ResumeProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I noticed that this position emphasizes %s", strings.Join(head(kw.Technical, 3), ", "))
	if len(matched) > 0 {
		fmt.Fprintf(&b, ". I have direct experience working with %s, which I have applied in real-world projects", strings.Join(matched, ", "))
	}
	foundation := append(head(p.Skills.Languages, 3), head(p.Skills.Frontend, 2)...)
	fmt.Fprintf(&b, ". My technical foundation includes proficiency in %s, and I continuously expand my knowledge to stay current with industry best practices.",
		strings.Join(foundation, ", "))
	return b.String()
}

func educationParagraph(p *ResumeProfile) string {
	var intro string
	if len(p.Education) > 0 {
		intro = fmt.Sprintf("My education from %s, where I completed %s, combined with my professional experience, has equipped me with a solid foundation in software development principles.",
			p.Education[0].Institution, p.Education[0].Degree)
	} else {
		intro = "My education and continued self-study, combined with my professional experience, have equipped me with a solid foundation in software development principles."
	}

	tail := "I thrive in collaborative environments and take pride in delivering high-quality, maintainable code."
	if len(p.Experience) > 0 && len(p.Experience[0].Achievements) > 1 {
		tail = p.Experience[0].Achievements[1]
	}
	return intro + " " + tail
}

// containsEither reports whether skill pairs with any resume skill by
// substring containment in either direction.
func containsEither(resumeSkills []string, skill string) bool {
	skillLower := strings.ToLower(skill)
	for _, rs := range resumeSkills {
		if strings.Contains(rs, skillLower) || strings.Contains(skillLower, rs) {
			return true
		}
	}
	return false
}

func head(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return s[:n:n]
}
