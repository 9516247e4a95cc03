package analytics

import (
	"sort"

	"jtrack-backend/internal/domain"
)

// maxSources caps the source breakdown at the ten busiest sources.
const maxSources = 10

// SourceStats aggregates outcomes for one application source.
type SourceStats struct {
	Source      string  `json:"source"`
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	Pending     int     `json:"pending"`
	Rejected    int     `json:"rejected"`
	SuccessRate float64 `json:"success_rate"`
}

// SourceBreakdown groups applications by source (missing source folds into
// OTHER), sorted by total descending. Ties keep first-encounter order, and
// the result is truncated to the top ten.
func SourceBreakdown(apps []domain.Application) []SourceStats {
	index := make(map[string]int)
	var stats []SourceStats

	for _, app := range apps {
		source := app.ApplicationSource
		if source == "" {
			source = domain.SourceOther
		}

		i, ok := index[source]
		if !ok {
			i = len(stats)
			index[source] = i
			stats = append(stats, SourceStats{Source: source})
		}

		stats[i].Total++
		switch {
		case isSuccessful(app.Status):
			stats[i].Successful++
		case isActive(app.Status):
			stats[i].Pending++
		case app.Status == domain.StatusRejected:
			stats[i].Rejected++
		}
		stats[i].SuccessRate = float64(stats[i].Successful) / float64(stats[i].Total) * 100
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Total > stats[b].Total
	})
	if len(stats) > maxSources {
		stats = stats[:maxSources]
	}
	return stats
}
