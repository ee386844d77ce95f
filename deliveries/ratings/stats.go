package ratings

import (
	"sort"

	"quickdeliver/deliveries/models"
)

type CategoryStats struct {
	Category models.RatingCategory
	Count    int
	Mean     float64
}

// Stats aggregates the whole filtered set, not the current page.
type Stats struct {
	Total      int
	Mean       float64
	ByCategory []CategoryStats
}

func Summarize(rs []models.Rating) Stats {
	stats := Stats{Total: len(rs)}
	if len(rs) == 0 {
		return stats
	}

	sum := 0
	sums := map[models.RatingCategory]int{}
	counts := map[models.RatingCategory]int{}
	for _, r := range rs {
		sum += r.Score
		sums[r.Category] += r.Score
		counts[r.Category]++
	}
	stats.Mean = float64(sum) / float64(len(rs))

	for category, count := range counts {
		stats.ByCategory = append(stats.ByCategory, CategoryStats{
			Category: category,
			Count:    count,
			Mean:     float64(sums[category]) / float64(count),
		})
	}
	// Busiest categories first, name as tiebreak for a stable listing.
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		a, b := stats.ByCategory[i], stats.ByCategory[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	return stats
}
