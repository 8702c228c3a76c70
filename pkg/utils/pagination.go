package utils

import "math"

// MaxPageLimit caps the page size a client may request
const MaxPageLimit = 100

// Page is a 1-based page request. Limit 0 returns every row.
type Page struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PageMeta is rendered next to paginated lists
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NormalizePage clamps page to >= 1 and limit to [0, MaxPageLimit]
func NormalizePage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 0:
		limit = 0
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset returns the SQL offset of the page
func (p Page) Offset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// NewPageMeta describes the page p of a result set with total rows
func NewPageMeta(total int64, p Page) PageMeta {
	if p.Limit <= 0 {
		return PageMeta{Page: 1, Limit: int(total), TotalCount: total, TotalPages: 1}
	}
	return PageMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}
