package ratings

import "quickdeliver/deliveries/models"

type Page struct {
	Items      []models.Rating
	Number     int
	TotalPages int
	TotalItems int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) PrevPage() int { return p.Number - 1 }
func (p Page) NextPage() int { return p.Number + 1 }

// Paginate slices the filtered, sorted set at PageSize. Out-of-range page
// numbers clamp to the nearest valid page; an empty set yields page 1.
func Paginate(rs []models.Rating, page int) Page {
	totalPages := (len(rs) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(rs) {
		start = len(rs)
	}
	if end > len(rs) {
		end = len(rs)
	}

	return Page{
		Items:      rs[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(rs),
	}
}

// Result is everything the listing page renders.
type Result struct {
	Page  Page
	Stats Stats
}

// Run executes the whole pipeline over the full rating set.
func Run(all []models.Rating, f Filter, page int) Result {
	filtered := Apply(all, f)
	return Result{
		Page:  Paginate(filtered, page),
		Stats: Summarize(filtered),
	}
}
