package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bertramb10/jobscout/internal/engine"
)

const (
	itjobbankFeedURL = "https://www.it-jobbank.dk/jobsoegning.rss"
	itjobbankMaxJobs = 25
)

// FetchITJobbank queries the it-jobbank.dk RSS feed. The board is
// IT-only, so no category parameter is needed.
func FetchITJobbank(ctx context.Context, keywords, location string) ([]engine.JobRecord, error) {
	u, _ := url.Parse(itjobbankFeedURL)
	q := u.Query()
	q.Set("q", keywords)
	if location != "" && strings.ToLower(location) != "danmark" {
		q.Set("area", areaCode(location))
	}
	u.RawQuery = q.Encode()

	xml, err := fetchFeed(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("it-jobbank: %w", err)
	}
	engine.IncrItjobbankRequests()

	return parseFeedItems(xml, "itjobbank", itjobbankMaxJobs), nil
}
