// jobscout — Danish job-hunt assistant.
//
// Polls Jobindex and it-jobbank RSS feeds, extracts keywords and
// requirements from postings, scores them against a resume, drafts
// cover letters and emails high-match finds on a cron schedule.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"

	"github.com/bertramb10/jobscout/internal/engine"
	"github.com/bertramb10/jobscout/internal/engine/jobs"
	"github.com/bertramb10/jobscout/internal/jobserver"
	"github.com/bertramb10/jobscout/internal/scheduler"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file", slog.Any("error", err))
	}

	initEngine()

	port := env.Str("PORT", "8890")
	cronSpec := env.Str("CRON_SCHEDULE", "0 */6 * * *")

	slog.Info("starting jobscout",
		slog.String("version", version),
		slog.String("port", port),
		slog.String("cron", cronSpec),
	)

	store, err := jobs.OpenJobStore(filepath.Join(engine.Cfg.DataDir, "jobs.db"))
	if err != nil {
		slog.Error("job store init failed", slog.Any("error", err))
		os.Exit(1)
	}

	srv := jobserver.New(":"+port, store)
	srv.AttachScheduler(scheduler.New(cronSpec, func(ctx context.Context) {
		if _, err := jobserver.RunAutoCheck(ctx, store); err != nil {
			slog.Error("scheduled auto-check failed", slog.Any("error", err))
		}
	}))

	if err := srv.Start(); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func initEngine() {
	c := engine.Config{
		DataDir:              env.Str("DATA_DIR", "data"),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 20000),
		MaxDescriptionChars:  env.Int("MAX_DESCRIPTION_CHARS", 1500),
		CheckLocation:        env.Str("CHECK_LOCATION", "københavn"),
		SMTPUser:             env.Str("EMAIL_USER", ""),
		SMTPPassword:         env.Str("EMAIL_PASSWORD", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
