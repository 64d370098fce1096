package jobserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bertramb10/jobscout/internal/engine"
	"github.com/bertramb10/jobscout/internal/engine/jobs"
	"github.com/bertramb10/jobscout/internal/engine/sources"
	"github.com/bertramb10/jobscout/internal/notify"
	"github.com/bertramb10/jobscout/internal/scheduler"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type analyzeRequest struct {
	Mode string `json:"mode"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

type analyzeResponse struct {
	Keywords     jobs.ExtractedKeywords `json:"keywords"`
	Requirements []string               `json:"requirements"`
	MatchScore   int                    `json:"matchScore"`
	CoverLetter  string                 `json:"coverLetter"`
}

// handleAnalyzeJob runs the full pipeline on a single posting: fetch or
// take raw text, extract keywords and requirements, score against the
// resume, compose a cover letter.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var text string
	switch {
	case req.Mode == "url" && req.URL != "":
		fetched, err := engine.FetchJobPosting(r.Context(), req.URL)
		if err != nil {
			slog.Error("fetch posting", slog.String("url", req.URL), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "Failed to analyze job posting")
			return
		}
		text = fetched
	case req.Mode == "text" && req.Text != "":
		text = req.Text
	default:
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	profile, err := jobs.LoadResumeProfile()
	if err != nil {
		slog.Error("load resume", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to analyze job posting")
		return
	}

	keywords := jobs.ExtractKeywords(text)
	requirements := jobs.ExtractRequirements(text)
	score := jobs.Score(keywords.Technical, profile.ScoringSkills())
	letter := jobs.ComposeCoverLetter(text, keywords, profile)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Keywords:     keywords,
		Requirements: requirements,
		MatchScore:   score,
		CoverLetter:  letter,
	})
}

type fetchJobsRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
}

type fetchJobsResponse struct {
	Jobs       []engine.JobRecord `json:"jobs"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
}

func (s *Server) handleFetchJobs(w http.ResponseWriter, r *http.Request) {
	var req fetchJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Søgeord er påkrævet")
		return
	}
	if req.Keywords == "" {
		writeError(w, http.StatusBadRequest, "Søgeord er påkrævet")
		return
	}

	key := engine.CacheKey("fetch-jobs", req.Keywords, req.Location)
	if cached, ok := engine.CacheGetJSON[fetchJobsResponse](r.Context(), key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	var skills []string
	if profile, err := jobs.LoadResumeProfile(); err == nil {
		skills = profile.ScoringSkills()
	} else {
		slog.Warn("resume unavailable, scoring without skills", slog.Any("error", err))
	}

	found := sources.Search(r.Context(), req.Keywords, req.Location, skills)

	resp := fetchJobsResponse{Jobs: found, TotalCount: len(found), Page: 1}
	engine.CacheSetJSON(r.Context(), key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAutoCheck(w http.ResponseWriter, r *http.Request) {
	result, err := RunAutoCheck(r.Context(), s.store)
	if err != nil {
		slog.Error("auto-check", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Auto-check failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type listJobsResponse struct {
	Jobs       []engine.JobRecord `json:"jobs"`
	TotalCount int                `json:"totalCount"`
}

// handleListJobs returns jobs stored by earlier auto-checks, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	stored, err := s.store.List(limit)
	if err != nil {
		slog.Error("list jobs", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	total, err := s.store.Count()
	if err != nil {
		slog.Error("count jobs", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	writeJSON(w, http.StatusOK, listJobsResponse{Jobs: stored, TotalCount: total})
}

func (s *Server) handleCronStart(w http.ResponseWriter, _ *http.Request) {
	if s.sched == nil {
		writeError(w, http.StatusInternalServerError, "Scheduler not configured")
		return
	}
	// Background, not the request context: the cron outlives the request.
	if err := s.sched.Start(context.Background()); err != nil {
		if errors.Is(err, scheduler.ErrAlreadyRunning) {
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "Cron job already running",
				"status":  "active",
			})
			return
		}
		slog.Error("start scheduler", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to start cron job")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Cron job started successfully",
		"schedule": s.sched.Spec(),
		"status":   "active",
	})
}

func (s *Server) handleCronStop(w http.ResponseWriter, _ *http.Request) {
	if s.sched == nil {
		writeError(w, http.StatusInternalServerError, "Scheduler not configured")
		return
	}
	if err := s.sched.Stop(); err != nil {
		if errors.Is(err, scheduler.ErrNotRunning) {
			writeJSON(w, http.StatusOK, map[string]string{
				"message": "Cron job not running",
				"status":  "inactive",
			})
			return
		}
		slog.Error("stop scheduler", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to stop cron job")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Cron job stopped successfully",
		"status":  "inactive",
	})
}

func (s *Server) handleCronStatus(w http.ResponseWriter, _ *http.Request) {
	status := "inactive"
	schedule := ""
	if s.sched != nil {
		schedule = s.sched.Spec()
		if s.sched.Running() {
			status = "active"
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   status,
		"schedule": schedule,
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := jobs.LoadSettings()
	if err != nil {
		slog.Error("load settings", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings jobs.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings")
		return
	}
	if err := jobs.SaveSettings(settings); err != nil {
		slog.Warn("save settings rejected", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, "Invalid settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Settings saved successfully",
	})
}

func (s *Server) handleGetProfiles(w http.ResponseWriter, _ *http.Request) {
	profiles, err := jobs.LoadSearchProfiles()
	if err != nil {
		slog.Error("load profiles", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to load profiles")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

type updateProfilesRequest struct {
	ActiveProfile  string   `json:"activeProfile"`
	CustomKeywords []string `json:"customKeywords"`
}

func (s *Server) handleUpdateProfiles(w http.ResponseWriter, r *http.Request) {
	var req updateProfilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid profile update")
		return
	}
	updated, err := jobs.UpdateSearchProfiles(req.ActiveProfile, req.CustomKeywords)
	if err != nil {
		slog.Error("update profiles", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, "Invalid profile update")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Profile updated successfully",
		"profiles": updated,
	})
}

type testEmailRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleTestEmail(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email address required")
		return
	}

	settings, err := jobs.LoadSettings()
	if err != nil {
		slog.Error("load settings", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to send test email")
		return
	}

	if err := notify.SendJobNotification(r.Context(), req.Email, settings.MatchThreshold, testEmailJobs()); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": false,
				"message": "Email credentials not configured. Set EMAIL_USER and EMAIL_PASSWORD.",
			})
			return
		}
		slog.Error("send test email", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to send test email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Test email sent successfully to %s! Check your inbox (and spam folder).", req.Email),
	})
}

// testEmailJobs builds the sample postings used for notification tests.
func testEmailJobs() []engine.JobRecord {
	now := time.Now().UTC().Format(time.RFC3339)
	return []engine.JobRecord{
		{
			ID:           "test-1",
			Title:        "Senior Software Udvikler - Test Job",
			Company:      "Test Company A/S",
			Location:     "København",
			Description:  "Dette er en test-email fra dit job-søgningssystem. Hvis du modtager denne, virker email-notifikationerne!",
			URL:          "https://www.jobindex.dk",
			PostedDate:   now,
			ContractType: "Fuldtid",
			MatchScore:   85,
		},
		{
			ID:           "test-2",
			Title:        "Full Stack Developer - .NET & React",
			Company:      "Digital Solutions ApS",
			Location:     "København",
			Description:  "Endnu et test-job for at vise hvordan flere jobs ser ud i notifikations-emailen.",
			URL:          "https://www.it-jobbank.dk",
			PostedDate:   now,
			ContractType: "Fuldtid",
			MatchScore:   92,
		},
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, engine.FormatMetrics())
}
