package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// Result is one derived page of the catalog.
type Result struct {
	Items     []models.Product // the requested page, in sorted order
	Total     int              // products matching the filters, before paging
	Page      int
	PageCount int
}

// Apply runs the whole pipeline: filter, sort, paginate.
func Apply(items []models.Product, c Criteria) Result {
	filtered := Filter(items, c)
	sorted := Sort(filtered, c.Sort)

	size := c.PageSize
	if size <= 0 {
		size = len(sorted)
	}
	pageCount := 0
	if size > 0 {
		pageCount = (len(sorted) + size - 1) / size
	}

	return Result{
		Items:     Paginate(sorted, c.Page, c.PageSize),
		Total:     len(sorted),
		Page:      c.Page,
		PageCount: pageCount,
	}
}

// Filter returns the subsequence of items matching the criteria, in the
// original order.
func Filter(items []models.Product, c Criteria) []models.Product {
	query := Fold(c.Search)

	matched := make([]models.Product, 0, len(items))
	for _, p := range items {
		if !categoryMatch(p, c.Category) || !regionMatch(p, c.Region) {
			continue
		}
		if float64(p.Price) < c.PriceMin || float64(p.Price) > c.PriceMax {
			continue
		}
		if query != "" && !searchMatch(p, query) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func categoryMatch(p models.Product, category string) bool {
	return category == "" || category == AllCategories || p.Category.Name == category
}

func regionMatch(p models.Product, region string) bool {
	return region == "" || region == AllRegions || p.Region.Name == region
}

// searchMatch is a substring match OR'd across every text field a shopper
// might remember a product by. query must already be folded.
func searchMatch(p models.Product, query string) bool {
	fields := []string{
		p.Name,
		p.Description,
		p.Category.Name,
		p.Region.Name,
		p.ArtisanName(),
		p.Materials,
		p.Dimensions,
		p.CulturalSignificance,
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), query) {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by key. Ordering is stable, so ties keep
// their fetch order. SortPopularity is the input order itself: the backend
// already serves the catalog ranked.
func Sort(items []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)

	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// Paginate slices out the 1-indexed page. A page past the end yields an
// empty slice, not an error.
func Paginate(items []models.Product, page, size int) []models.Product {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []models.Product{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes text for matching: NFD decomposition with combining marks
// stripped, then lower-cased. "fes" matches "Atelier Fès" under this rule.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
