package jobs

import "testing"

func TestScore(t *testing.T) {
	skills := []string{"c#", ".net", "react", "typescript", "sql"}

	tests := []struct {
		name      string
		technical []string
		want      int
	}{
		{"all matched", []string{"react", "typescript"}, 100},
		{"half matched", []string{"react", "cobol"}, 50},
		{"none matched", []string{"cobol", "fortran"}, 0},
		{"empty keywords give neutral score", nil, 50},
		{"substring both directions", []string{"reactjs"}, 100}, // "react" ⊂ "reactjs"
		{"case insensitive", []string{"React", "TypeScript"}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.technical, skills); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.technical, got, tt.want)
			}
		})
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	// 1 of 3 matched = 33.33 -> 33; 2 of 3 = 66.67 -> 67.
	skills := []string{"go"}
	if got := Score([]string{"go", "x1", "x2"}, skills); got != 33 {
		t.Errorf("1/3 = %d, want 33", got)
	}
	skills = []string{"go", "rust"}
	if got := Score([]string{"go", "rust", "x1"}, skills); got != 67 {
		t.Errorf("2/3 = %d, want 67", got)
	}
}

func TestScoreNoResumeSkills(t *testing.T) {
	if got := Score([]string{"react"}, nil); got != 0 {
		t.Errorf("score = %d, want 0 with empty resume", got)
	}
}
