package engine

// JobRecord is one normalized job posting produced by feed ingestion.
// URL is the canonical dedup key across sources. FoundAt and Notified are
// bookkeeping fields stamped by the auto-check, not by the sources.
type JobRecord struct {
	ID           string `json:"id"` // source-prefixed sequential id, e.g. "rss-3"
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	PostedDate   string `json:"postedDate"` // RFC 3339
	Salary       string `json:"salary,omitempty"`
	ContractType string `json:"contractType"`
	MatchScore   int    `json:"matchScore"` // 0–100, attached by the scorer
	FoundAt      string `json:"foundAt,omitempty"`
	Notified     bool   `json:"notified,omitempty"`
}
