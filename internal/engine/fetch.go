package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Max bytes read from a fetched job posting page.
const maxFetchBytes = 2 << 20

// FetchJobPosting downloads a job-posting page and returns its visible
// text, whitespace-collapsed and capped at MaxContentChars runes.
func FetchJobPosting(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	IncrFetchRequests()

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	resp, err := RetryHTTP(fetchCtx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgentBrowser)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		IncrFetchErrors()
		return "", fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		IncrFetchErrors()
		return "", fmt.Errorf("fetch %s: status %d", u.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		IncrFetchErrors()
		return "", fmt.Errorf("read %s: %w", u.Host, err)
	}

	text := htmlToText(string(body))
	return TruncateRunes(text, cfg.MaxContentChars, ""), nil
}

// htmlToText extracts visible text from an HTML document, skipping
// script, style and noscript content. Falls back to a raw tokenizer walk
// when the document fails to parse as a tree.
func htmlToText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return tokenizeText(raw)
	}
	doc.Find("script, style, noscript").Remove()
	return CollapseWhitespace(doc.Text())
}

func tokenizeText(raw string) string {
	tz := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return CollapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := tz.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tz.TagName()
			switch string(name) {
			case "script", "style", "noscript":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tz.Text())
				b.WriteByte(' ')
			}
		}
	}
}
