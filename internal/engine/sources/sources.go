package sources

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bertramb10/jobscout/internal/engine"
	"github.com/bertramb10/jobscout/internal/engine/jobs"
)

// Source is one job board to poll.
type Source struct {
	Name  string
	Fetch func(ctx context.Context, keywords, location string) ([]engine.JobRecord, error)
}

// DefaultSources lists the boards polled on every search.
func DefaultSources() []Source {
	return []Source{
		{Name: "jobindex", Fetch: FetchJobIndex},
		{Name: "it-jobbank", Fetch: FetchITJobbank},
	}
}

// FetchAll polls all sources concurrently and concatenates results in
// source order, so URL dedup always keeps the same source's copy no
// matter which fetch finished first. A failed source contributes
// nothing and is logged, never fatal.
func FetchAll(ctx context.Context, srcs []Source, keywords, location string) []engine.JobRecord {
	results := make([][]engine.JobRecord, len(srcs))

	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			found, err := src.Fetch(ctx, keywords, location)
			if err != nil {
				slog.Warn("source fetch failed", slog.String("source", src.Name), slog.Any("error", err))
				return
			}
			slog.Info("source fetched", slog.String("source", src.Name), slog.Int("jobs", len(found)), slog.String("keywords", keywords))
			results[i] = found
		}(i, src)
	}
	wg.Wait()

	var all []engine.JobRecord
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// DedupByURL keeps the first occurrence of each URL.
func DedupByURL(in []engine.JobRecord) []engine.JobRecord {
	seen := make(map[string]bool, len(in))
	out := make([]engine.JobRecord, 0, len(in))
	for _, j := range in {
		if seen[j.URL] {
			continue
		}
		seen[j.URL] = true
		out = append(out, j)
	}
	return out
}

// LocationFilter narrows results to a metro area by matching municipality
// names in the job text. Exclude wins over Include, catching postings
// that mention both areas ("kontorer i København og Aarhus" hiring for
// Aarhus).
type LocationFilter struct {
	Aliases []string // location inputs this filter applies to
	Include []string
	Exclude []string
}

// DefaultCopenhagenFilter covers the greater Copenhagen commute belt
// and excludes the Jylland/Fyn cities that keyword searches drag in.
func DefaultCopenhagenFilter() LocationFilter {
	return LocationFilter{
		Aliases: []string{"københavn", "kobenhavn", "kbh", "storkøbenhavn", "copenhagen"},
		Include: []string{
			"københavn", "copenhagen", "kbh", "storkøbenhavn",
			"frederiksberg", "gentofte", "gladsaxe", "herlev", "rødovre",
			"glostrup", "brøndby", "hvidovre", "vallensbæk", "ishøj",
			"tårnby", "dragør", "albertslund", "ballerup", "høje-taastrup",
			"lyngby", "rudersdal", "furesø", "helsingør", "fredensborg",
			"hillerød", "hørsholm", "allerød", "egedal", "frederikssund",
			"solrød", "greve", "køge", "roskilde", "lejre",
		},
		Exclude: []string{
			"aarhus", "aalborg", "odense", "esbjerg", "randers", "kolding",
			"horsens", "vejle", "silkeborg", "herning", "fredericia", "viborg",
			"hjørring", "holstebro", "thisted", "svendborg", "næstved",
			"frederikshavn", "middelfart", "sønderborg", "jylland", "fyn",
		},
	}
}

// AppliesTo reports whether the filter covers the given location input.
func (f LocationFilter) AppliesTo(location string) bool {
	lower := strings.ToLower(location)
	for _, a := range f.Aliases {
		if lower == a || foldDanish(location) == foldDanish(a) {
			return true
		}
	}
	return false
}

// Apply keeps jobs whose combined text names an included area and no
// excluded one.
func (f LocationFilter) Apply(in []engine.JobRecord) []engine.JobRecord {
	out := make([]engine.JobRecord, 0, len(in))
	for _, j := range in {
		fullText := strings.ToLower(j.Title + " " + j.Description + " " + j.Location)

		excluded := false
		for _, area := range f.Exclude {
			if strings.Contains(fullText, area) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		for _, area := range f.Include {
			if strings.Contains(fullText, area) {
				out = append(out, j)
				break
			}
		}
	}
	return out
}

// Search runs the full ingestion pipeline: poll the boards, dedup,
// filter by location, fall back to mock data when everything came back
// empty, annotate each job with a quick match score against the resume
// skills, and sort by score. The sort is stable, so equal scores keep
// source order.
func Search(ctx context.Context, keywords, location string, resumeSkills []string) []engine.JobRecord {
	merged := DedupByURL(FetchAll(ctx, DefaultSources(), keywords, location))

	if filter := DefaultCopenhagenFilter(); location != "" && filter.AppliesTo(location) {
		before := len(merged)
		merged = filter.Apply(merged)
		slog.Info("location filter applied", slog.String("location", location), slog.Int("before", before), slog.Int("after", len(merged)))
	}

	if len(merged) == 0 {
		engine.IncrMockFallbacks()
		slog.Warn("no jobs from any source, serving mock data", slog.String("keywords", keywords))
		merged = MockJobs()
	}

	for i := range merged {
		kw := jobs.QuickExtractKeywords(merged[i].Title + " " + merged[i].Description)
		merged[i].MatchScore = jobs.Score(kw.Technical, resumeSkills)
	}

	sortJobsByScore(merged)
	return merged
}

func sortJobsByScore(jobs []engine.JobRecord) {
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].MatchScore > jobs[b].MatchScore
	})
}
