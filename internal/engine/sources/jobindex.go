package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bertramb10/jobscout/internal/engine"
)

const (
	jobindexFeedURL = "https://www.jobindex.dk/jobsoegning.rss"
	jobindexITCat   = "1" // supid for the IT category
	jobindexMaxJobs = 20
)

// feedLimiter spaces out requests to the job boards. Both feeds share
// one limiter since they sit behind the same operator.
var feedLimiter = rate.NewLimiter(rate.Every(time.Second), 2)

// Cap on feed response bytes.
const maxFeedBytes = 4 << 20

// FetchJobIndex queries the jobindex.dk RSS feed, restricted to the IT
// category. No retries: a failed feed poll just yields nothing until
// the next one.
func FetchJobIndex(ctx context.Context, keywords, location string) ([]engine.JobRecord, error) {
	u, _ := url.Parse(jobindexFeedURL)
	q := u.Query()
	q.Set("supid", jobindexITCat)
	q.Set("q", keywords)
	if location != "" && strings.ToLower(location) != "danmark" {
		q.Set("area", areaCode(location))
	}
	u.RawQuery = q.Encode()

	xml, err := fetchFeed(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("jobindex: %w", err)
	}
	engine.IncrJobindexRequests()

	return parseFeedItems(xml, "rss", jobindexMaxJobs), nil
}

// fetchFeed performs one rate-limited GET and returns the body.
func fetchFeed(ctx context.Context, feedURL string) (string, error) {
	if err := feedLimiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
