package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DataDir             string // resume.json, settings.json, profiles.json, jobs.db
	FetchTimeout        time.Duration
	MaxContentChars     int    // cap on job-posting text handed to the extractor
	MaxDescriptionChars int    // cap on feed description text
	CheckLocation       string // location used by the periodic auto-check

	SMTPUser     string // sender address; empty disables email notifications
	SMTPPassword string

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.MaxContentChars == 0 {
		c.MaxContentChars = 20000
	}
	if c.MaxDescriptionChars == 0 {
		c.MaxDescriptionChars = 1500
	}
	cfg = c
	Cfg = &cfg
}
