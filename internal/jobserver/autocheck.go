package jobserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bertramb10/jobscout/internal/engine"
	"github.com/bertramb10/jobscout/internal/engine/jobs"
	"github.com/bertramb10/jobscout/internal/engine/sources"
	"github.com/bertramb10/jobscout/internal/notify"
)

// jobStoreCap bounds the sqlite table; oldest rows are pruned past it.
const jobStoreCap = 500

// CheckResult summarizes one auto-check run.
type CheckResult struct {
	Success             bool   `json:"success"`
	NewJobs             int    `json:"newJobs"`
	HighMatchJobs       int    `json:"highMatchJobs"`
	TotalJobsInDatabase int    `json:"totalJobsInDatabase"`
	LastChecked         string `json:"lastChecked"`
}

// RunAutoCheck searches the feeds for every configured keyword, keeps
// postings not seen before, emails the ones at or above the match
// threshold and persists everything.
func RunAutoCheck(ctx context.Context, store *jobs.JobStore) (CheckResult, error) {
	engine.IncrChecksRun()

	settings, err := jobs.LoadSettings()
	if err != nil {
		return CheckResult{}, fmt.Errorf("load settings: %w", err)
	}

	location := engine.Cfg.CheckLocation
	if location == "" {
		location = "københavn"
	}

	var skills []string
	if profile, err := jobs.LoadResumeProfile(); err == nil {
		skills = profile.ScoringSkills()
	} else {
		slog.Warn("resume unavailable, scoring without skills", slog.Any("error", err))
	}

	seen := make(map[string]bool)
	var newJobs []engine.JobRecord
	now := time.Now().UTC().Format(time.RFC3339)

	for _, keyword := range settings.SearchKeywords {
		if err := ctx.Err(); err != nil {
			return CheckResult{}, err
		}
		for _, job := range sources.Search(ctx, keyword, location, skills) {
			if seen[job.URL] {
				continue
			}
			seen[job.URL] = true

			known, err := store.Has(job.URL)
			if err != nil {
				return CheckResult{}, fmt.Errorf("check job %s: %w", job.URL, err)
			}
			if known {
				continue
			}
			job.FoundAt = now
			job.Notified = false
			newJobs = append(newJobs, job)
		}
	}

	highMatch := 0
	for _, job := range newJobs {
		if job.MatchScore >= settings.MatchThreshold {
			highMatch++
		}
	}

	if highMatch > 0 {
		toNotify := make([]engine.JobRecord, 0, highMatch)
		for _, job := range newJobs {
			if job.MatchScore >= settings.MatchThreshold {
				toNotify = append(toNotify, job)
			}
		}
		switch err := notify.SendJobNotification(ctx, settings.NotificationEmail, settings.MatchThreshold, toNotify); {
		case err == nil:
			for i := range newJobs {
				if newJobs[i].MatchScore >= settings.MatchThreshold {
					newJobs[i].Notified = true
				}
			}
		case errors.Is(err, notify.ErrNotConfigured):
			// Already logged by the notifier; the check still counts.
		default:
			slog.Error("send notification", slog.Any("error", err))
		}
	}

	if len(newJobs) > 0 {
		if err := store.InsertJobs(newJobs); err != nil {
			return CheckResult{}, fmt.Errorf("store jobs: %w", err)
		}
		if err := store.Prune(jobStoreCap); err != nil {
			return CheckResult{}, fmt.Errorf("prune jobs: %w", err)
		}
	}
	if err := store.SetLastChecked(now); err != nil {
		return CheckResult{}, fmt.Errorf("record check time: %w", err)
	}

	total, err := store.Count()
	if err != nil {
		return CheckResult{}, fmt.Errorf("count jobs: %w", err)
	}

	slog.Info("auto-check complete",
		slog.Int("new_jobs", len(newJobs)),
		slog.Int("high_match", highMatch),
		slog.Int("total", total))

	return CheckResult{
		Success:             true,
		NewJobs:             len(newJobs),
		HighMatchJobs:       highMatch,
		TotalJobsInDatabase: total,
		LastChecked:         now,
	}, nil
}
