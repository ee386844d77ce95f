// Package ratings implements the listing pipeline for ratings: category and
// minimum-score filters, ordering, aggregate statistics over the filtered
// set, and fixed-size pagination.
package ratings

import (
	"net/url"
	"sort"
	"strconv"

	"quickdeliver/deliveries/models"
)

const PageSize = 10

type SortKey string

const (
	SortNewest  SortKey = "recentes"
	SortOldest  SortKey = "antigas"
	SortHighest SortKey = "melhores"
	SortLowest  SortKey = "piores"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortOldest, SortHighest, SortLowest:
		return true
	}
	return false
}

type Filter struct {
	Category models.RatingCategory
	MinScore int
	Sort     SortKey
}

// ParseFilter builds a Filter from raw query values. Unknown or malformed
// values fall back to the unfiltered default rather than erroring.
func ParseFilter(category, minScore, sortKey string) Filter {
	f := Filter{Sort: SortNewest}

	if c := models.RatingCategory(category); c.Valid() {
		f.Category = c
	}
	if n, err := strconv.Atoi(minScore); err == nil && n >= 1 && n <= 5 {
		f.MinScore = n
	}
	if k := SortKey(sortKey); k.Valid() {
		f.Sort = k
	}
	return f
}

// PageQuery renders the query string for a page link, keeping any active
// filter parameters alongside the page number.
func (f Filter) PageQuery(page int) string {
	values := url.Values{}
	if f.Category != "" {
		values.Set("tipo", string(f.Category))
	}
	if f.MinScore > 0 {
		values.Set("min_nota", strconv.Itoa(f.MinScore))
	}
	if f.Sort != SortNewest {
		values.Set("ordenacao", string(f.Sort))
	}
	values.Set("page", strconv.Itoa(page))
	return "?" + values.Encode()
}

func (f Filter) Matches(r models.Rating) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.MinScore > 0 && r.Score < f.MinScore {
		return false
	}
	return true
}

// Apply filters and orders the full rating set.
func Apply(all []models.Rating, f Filter) []models.Rating {
	filtered := make([]models.Rating, 0, len(all))
	for _, r := range all {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch f.Sort {
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortHighest:
			if a.Score != b.Score {
				return a.Score > b.Score
			}
		case SortLowest:
			if a.Score != b.Score {
				return a.Score < b.Score
			}
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return filtered
}
