// Package catalog derives the displayed product set from the fetched
// collection: text search, categorical filters, price bounds, sorting and
// pagination, plus the optimistic reconciliation applied after mutations.
// Everything here is pure; the fetched slice is never mutated, so clearing
// filters restores the full set without a re-fetch.
package catalog

import "math"

// Sentinel filter values meaning "no constraint". Distinct from any real
// category or region name, which the backend never serves as "all".
const (
	AllCategories = "all"
	AllRegions    = "all"
)

// SortKey selects the ordering of the displayed products.
type SortKey string

const (
	SortPopularity SortKey = "popularity" // input order
	SortNewest     SortKey = "newest"     // id descending
	SortPriceAsc   SortKey = "price-low"
	SortPriceDesc  SortKey = "price-high"
	SortRating     SortKey = "rating" // rating descending
)

// ValidSortKeys lists the accepted sort keys, in display order.
var ValidSortKeys = []SortKey{SortPopularity, SortNewest, SortPriceAsc, SortPriceDesc, SortRating}

// Criteria are the UI-selected constraints applied to a product list.
// PriceMin/PriceMax are inclusive; a range with min > max yields an empty
// result and is deliberately not auto-corrected. Page is 1-indexed.
type Criteria struct {
	Search   string
	Category string
	Region   string
	PriceMin float64
	PriceMax float64
	Sort     SortKey
	Page     int
	PageSize int
}

// NewCriteria returns criteria that match everything: empty search, "all"
// sentinels, the full price span, popularity order, first page.
func NewCriteria(pageSize int) Criteria {
	return Criteria{
		Category: AllCategories,
		Region:   AllRegions,
		PriceMin: 0,
		PriceMax: math.Inf(1),
		Sort:     SortPopularity,
		Page:     1,
		PageSize: pageSize,
	}
}

// The With helpers return updated criteria with the page reset to 1, so a
// criteria change never leaves the view on a page that no longer exists.

func (c Criteria) WithSearch(text string) Criteria {
	c.Search = text
	c.Page = 1
	return c
}

func (c Criteria) WithCategory(name string) Criteria {
	c.Category = name
	c.Page = 1
	return c
}

func (c Criteria) WithRegion(name string) Criteria {
	c.Region = name
	c.Page = 1
	return c
}

func (c Criteria) WithPriceRange(min, max float64) Criteria {
	c.PriceMin = min
	c.PriceMax = max
	c.Page = 1
	return c
}

func (c Criteria) WithSort(key SortKey) Criteria {
	c.Sort = key
	c.Page = 1
	return c
}

func (c Criteria) WithPage(page int) Criteria {
	if page < 1 {
		page = 1
	}
	c.Page = page
	return c
}

// Filtered reports whether any constraint beyond the identity criteria is
// active, which drives the "clear all filters" affordance.
func (c Criteria) Filtered() bool {
	return c.Search != "" ||
		(c.Category != "" && c.Category != AllCategories) ||
		(c.Region != "" && c.Region != AllRegions) ||
		c.PriceMin > 0 ||
		!math.IsInf(c.PriceMax, 1)
}
