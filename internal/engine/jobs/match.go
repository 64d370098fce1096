package jobs

import (
	"math"
	"strings"
)

// Score compares extracted technical keywords against resume skills and
// returns a 0-100 percentage. A keyword matches when it contains a
// resume skill or a resume skill contains it, case-insensitively, so
// "react" pairs with "reactjs" in either direction. With no technical
// keywords there is nothing to measure and the score is a neutral 50.
func Score(technical []string, resumeSkills []string) int {
	if len(technical) == 0 {
		return 50
	}

	matched := 0
	for _, kw := range technical {
		kwLower := strings.ToLower(kw)
		for _, rs := range resumeSkills {
			if strings.Contains(rs, kwLower) || strings.Contains(kwLower, rs) {
				matched++
				break
			}
		}
	}

	return int(math.Round(float64(matched) / float64(len(technical)) * 100))
}
