package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics counts operational events. All counters are monotonically
// increasing since process start.
type Metrics struct {
	started time.Time

	jobindexRequests  atomic.Int64
	itjobbankRequests atomic.Int64
	fetchRequests     atomic.Int64
	fetchErrors       atomic.Int64
	mockFallbacks     atomic.Int64
	checksRun         atomic.Int64
	notificationsSent atomic.Int64
	cacheHits         atomic.Int64
	cacheMisses       atomic.Int64
}

var metrics = &Metrics{started: time.Now()}

func IncrJobindexRequests()  { metrics.jobindexRequests.Add(1) }
func IncrItjobbankRequests() { metrics.itjobbankRequests.Add(1) }
func IncrFetchRequests()     { metrics.fetchRequests.Add(1) }
func IncrFetchErrors()       { metrics.fetchErrors.Add(1) }
func IncrMockFallbacks()     { metrics.mockFallbacks.Add(1) }
func IncrChecksRun()         { metrics.checksRun.Add(1) }
func IncrNotificationsSent() { metrics.notificationsSent.Add(1) }
func IncrCacheHits()         { metrics.cacheHits.Add(1) }
func IncrCacheMisses()       { metrics.cacheMisses.Add(1) }

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	UptimeSeconds     int64 `json:"uptimeSeconds"`
	JobindexRequests  int64 `json:"jobindexRequests"`
	ItjobbankRequests int64 `json:"itjobbankRequests"`
	FetchRequests     int64 `json:"fetchRequests"`
	FetchErrors       int64 `json:"fetchErrors"`
	MockFallbacks     int64 `json:"mockFallbacks"`
	ChecksRun         int64 `json:"checksRun"`
	NotificationsSent int64 `json:"notificationsSent"`
	CacheHits         int64 `json:"cacheHits"`
	CacheMisses       int64 `json:"cacheMisses"`
}

func GetMetrics() MetricsSnapshot {
	return MetricsSnapshot{
		UptimeSeconds:     int64(time.Since(metrics.started).Seconds()),
		JobindexRequests:  metrics.jobindexRequests.Load(),
		ItjobbankRequests: metrics.itjobbankRequests.Load(),
		FetchRequests:     metrics.fetchRequests.Load(),
		FetchErrors:       metrics.fetchErrors.Load(),
		MockFallbacks:     metrics.mockFallbacks.Load(),
		ChecksRun:         metrics.checksRun.Load(),
		NotificationsSent: metrics.notificationsSent.Load(),
		CacheHits:         metrics.cacheHits.Load(),
		CacheMisses:       metrics.cacheMisses.Load(),
	}
}

// FormatMetrics renders counters as plain text, one per line.
func FormatMetrics() string {
	s := GetMetrics()
	var b strings.Builder
	fmt.Fprintf(&b, "uptime_seconds %d\n", s.UptimeSeconds)
	fmt.Fprintf(&b, "jobindex_requests %d\n", s.JobindexRequests)
	fmt.Fprintf(&b, "itjobbank_requests %d\n", s.ItjobbankRequests)
	fmt.Fprintf(&b, "fetch_requests %d\n", s.FetchRequests)
	fmt.Fprintf(&b, "fetch_errors %d\n", s.FetchErrors)
	fmt.Fprintf(&b, "mock_fallbacks %d\n", s.MockFallbacks)
	fmt.Fprintf(&b, "checks_run %d\n", s.ChecksRun)
	fmt.Fprintf(&b, "notifications_sent %d\n", s.NotificationsSent)
	fmt.Fprintf(&b, "cache_hits %d\n", s.CacheHits)
	fmt.Fprintf(&b, "cache_misses %d\n", s.CacheMisses)
	return b.String()
}
