package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bertramb10/jobscout/internal/engine"
)

// Settings drives the periodic auto-check: which keywords to search,
// where to send notifications, and the score threshold that makes a job
// worth an email.
type Settings struct {
	NotificationEmail string   `json:"notificationEmail" validate:"required,email"`
	MatchThreshold    int      `json:"matchThreshold" validate:"min=0,max=100"`
	SearchKeywords    []string `json:"searchKeywords" validate:"required,min=1"`
}

// DefaultSettings is used until the user saves their own.
func DefaultSettings() Settings {
	return Settings{
		NotificationEmail: "your-email@example.com",
		MatchThreshold:    80,
		SearchKeywords:    []string{"c#", "python", "javascript", "typescript", "react", "sql"},
	}
}

func settingsPath() string {
	return filepath.Join(engine.Cfg.DataDir, "settings.json")
}

// LoadSettings reads settings.json, falling back to defaults when the
// file does not exist yet.
func LoadSettings() (Settings, error) {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// SaveSettings validates and persists settings.
func SaveSettings(s Settings) error {
	if err := validate.Struct(&s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := os.MkdirAll(engine.Cfg.DataDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsPath(), data, 0o600)
}

// SearchProfile is a named keyword preset. The "custom" profile is the
// only one whose keywords can be edited.
type SearchProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Keywords       []string `json:"keywords"`
	MatchThreshold int      `json:"matchThreshold"`
}

// SearchProfiles is the preset collection plus which preset is active.
type SearchProfiles struct {
	ActiveProfile string          `json:"activeProfile"`
	Profiles      []SearchProfile `json:"profiles"`
}

// DefaultSearchProfiles seeds the preset list on first run.
func DefaultSearchProfiles() SearchProfiles {
	return SearchProfiles{
		ActiveProfile: "fullstack",
		Profiles: []SearchProfile{
			{ID: "fullstack", Name: "Full Stack", Keywords: []string{"c#", "python", "javascript", "typescript", "react", "sql"}, MatchThreshold: 80},
			{ID: "frontend", Name: "Frontend", Keywords: []string{"react", "typescript", "javascript", "css", "next.js"}, MatchThreshold: 75},
			{ID: "backend", Name: "Backend", Keywords: []string{"c#", ".net", "python", "sql", "azure"}, MatchThreshold: 75},
			{ID: "custom", Name: "Custom", Keywords: []string{}, MatchThreshold: 80},
		},
	}
}

func profilesPath() string {
	return filepath.Join(engine.Cfg.DataDir, "profiles.json")
}

// LoadSearchProfiles reads profiles.json, falling back to the default
// presets when the file does not exist yet.
func LoadSearchProfiles() (SearchProfiles, error) {
	data, err := os.ReadFile(profilesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSearchProfiles(), nil
		}
		return SearchProfiles{}, fmt.Errorf("read profiles: %w", err)
	}
	var sp SearchProfiles
	if err := json.Unmarshal(data, &sp); err != nil {
		return SearchProfiles{}, fmt.Errorf("parse profiles: %w", err)
	}
	return sp, nil
}

func saveSearchProfiles(sp SearchProfiles) error {
	if err := os.MkdirAll(engine.Cfg.DataDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(profilesPath(), data, 0o600)
}

// UpdateSearchProfiles switches the active preset and/or replaces the
// custom preset's keywords, then mirrors the now-active preset's
// keywords and threshold into the settings so the auto-check picks them
// up. Empty arguments leave the corresponding part untouched.
func UpdateSearchProfiles(activeProfile string, customKeywords []string) (SearchProfiles, error) {
	sp, err := LoadSearchProfiles()
	if err != nil {
		return SearchProfiles{}, err
	}

	if activeProfile != "" {
		sp.ActiveProfile = activeProfile
	}
	if customKeywords != nil {
		for i := range sp.Profiles {
			if sp.Profiles[i].ID == "custom" {
				sp.Profiles[i].Keywords = customKeywords
				break
			}
		}
	}

	if err := saveSearchProfiles(sp); err != nil {
		return SearchProfiles{}, err
	}

	for _, p := range sp.Profiles {
		if p.ID != sp.ActiveProfile || len(p.Keywords) == 0 {
			continue
		}
		s, err := LoadSettings()
		if err != nil {
			return SearchProfiles{}, err
		}
		s.SearchKeywords = p.Keywords
		s.MatchThreshold = p.MatchThreshold
		if err := SaveSettings(s); err != nil {
			return SearchProfiles{}, err
		}
		break
	}

	return sp, nil
}
