package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bertramb10/jobscout/internal/engine"
)

// ResumeProfile is the candidate's resume, read from resume.json in the
// data directory. The scorer and cover-letter composer both consume it.
type ResumeProfile struct {
	PersonalInfo PersonalInfo `json:"personalInfo" validate:"required"`
	Summary      string       `json:"summary"`
	Skills       SkillSet     `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
}

type PersonalInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// SkillSet groups resume skills by category. Other holds skills the
// scorer ignores but the cover-letter composer still matches against.
type SkillSet struct {
	Languages []string `json:"languages"`
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Tools     []string `json:"tools"`
	Other     []string `json:"other,omitempty"`
}

type Experience struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Period           string   `json:"period,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period,omitempty"`
}

var validate = validator.New()

// LoadResumeProfile reads and validates resume.json from the data
// directory. Read per call so profile edits take effect without a
// restart.
func LoadResumeProfile() (*ResumeProfile, error) {
	path := filepath.Join(engine.Cfg.DataDir, "resume.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}

	var p ResumeProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}
	return &p, nil
}

// ScoringSkills returns the lowercased skills used for match scoring:
// languages, frontend, backend and tools. Other is deliberately left
// out so soft/auxiliary entries don't inflate scores.
func (p *ResumeProfile) ScoringSkills() []string {
	return lowerAll(p.Skills.Languages, p.Skills.Frontend, p.Skills.Backend, p.Skills.Tools)
}

// AllSkills returns every lowercased resume skill including Other.
func (p *ResumeProfile) AllSkills() []string {
	return lowerAll(p.Skills.Languages, p.Skills.Frontend, p.Skills.Backend, p.Skills.Tools, p.Skills.Other)
}

func lowerAll(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		for _, s := range g {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
